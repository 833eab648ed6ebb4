package ontology

import (
	"fmt"
	"slices"

	"rf2owl/internal/common"
	"rf2owl/internal/diagnostic"
)

// roleFrame is one level of the explicit descent stack.
type roleFrame struct {
	id       string
	children []string
	next     int
}

// resolveRoles marks every descendant of the attribute root as a role. The
// parent role is the concept one level above in the descent; the root's
// direct children have none and the root itself is not a role.
//
// Children are visited in lexicographic order. A concept reached again from
// its recorded parent is skipped; reached from a different parent it keeps
// the first assignment and a conflict is reported. Reaching a concept that is
// still on the descent path is a cycle and fails the build.
func resolveRoles(vocab Vocabulary, children map[string][]string, diags *diagnostic.Diagnostics) (map[string]*Role, error) {
	roles := make(map[string]*Role)

	root := vocab.AttributeRoot
	if root == "" {
		return roles, nil
	}

	sortedChildren := func(id string) []string {
		return slices.Sorted(slices.Values(children[id]))
	}

	onPath := map[string]bool{root: true}
	stack := []roleFrame{{id: root, children: sortedChildren(root)}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.children) {
			delete(onPath, top.id)
			stack = stack[:len(stack)-1]

			continue
		}

		child := top.children[top.next]
		top.next++

		if onPath[child] {
			return nil, &CycleError{Role: child, From: top.id}
		}

		parent := common.None[string]()
		if top.id != root {
			parent = common.Some(top.id)
		}

		if existing, seen := roles[child]; seen {
			if existing.ParentRole != parent {
				diags.AddError(diagnostic.CodeRoleParentConflict,
					fmt.Sprintf("role also reached from %s; keeping parent %s",
						parent.OrElse(root), existing.ParentRole.OrElse(root)), child)
			}

			continue
		}

		role := &Role{ID: child, ParentRole: parent}
		if rid, ok := vocab.RightIdentity[child]; ok {
			role.RightIdentity = common.Some(rid)
		}

		roles[child] = role
		onPath[child] = true
		stack = append(stack, roleFrame{id: child, children: sortedChildren(child)})
	}

	return roles, nil
}
