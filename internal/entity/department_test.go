package entity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/23302610sole/clear-path-png/internal/entity"
)

func TestTargetDepartments(t *testing.T) {
	t.Parallel()

	t.Run("home_outside_catalog_appended_last", func(t *testing.T) {
		t.Parallel()

		targets := entity.TargetDepartments(entity.Catalog, "Architecture")

		require.Len(t, targets, len(entity.Catalog)+1)
		require.Equal(t, entity.CatalogEntry{Name: "Architecture", Code: "ARC"}, targets[len(targets)-1])
	})

	t.Run("home_in_catalog_not_duplicated", func(t *testing.T) {
		t.Parallel()

		targets := entity.TargetDepartments(entity.Catalog, "Library")

		require.Len(t, targets, len(entity.Catalog))

		seen := 0
		for _, target := range targets {
			if target.Name == "Library" {
				seen++
			}
		}

		require.Equal(t, 1, seen)
	})

	t.Run("empty_home_is_catalog_only", func(t *testing.T) {
		t.Parallel()

		targets := entity.TargetDepartments(entity.Catalog, "")

		require.Len(t, targets, len(entity.Catalog))
	})

	t.Run("catalog_order_preserved", func(t *testing.T) {
		t.Parallel()

		targets := entity.TargetDepartments(entity.Catalog, "Mess")

		for i, dept := range entity.Catalog {
			require.Equal(t, dept, targets[i])
		}
	})
}

func TestSynthCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "long_name", in: "Architecture", want: "ARC"},
		{name: "short_name", in: "it", want: "IT"},
		{name: "exactly_three", in: "law", want: "LAW"},
		{name: "already_upper", in: "FORESTRY", want: "FOR"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, tt.want, entity.SynthCode(tt.in))
		})
	}
}

func TestRoleHomePath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "/student", entity.RoleStudent.HomePath())
	require.Equal(t, "/department", entity.RoleDepartment.HomePath())
	require.Equal(t, "/admin", entity.RoleAdmin.HomePath())
	require.Equal(t, "/", entity.RoleNone.HomePath())
}
