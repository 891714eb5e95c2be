// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"coursebridge/internal/domain/entity"
	"coursebridge/internal/domain/repository"
	"coursebridge/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// roleRepository implements the repository.RoleRepository interface.
// Role rows are seeded by migration, so this repository is read-only.
type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository is the constructor for roleRepository.
func NewRoleRepository(db *gorm.DB) repository.RoleRepository {
	return &roleRepository{
		db: db,
	}
}

// FindByName retrieves a role by its unique name, preloading its permissions.
func (repo *roleRepository) FindByName(ctx context.Context, name entity.RoleName) (*entity.Role, error) {
	var roleM model.RoleModel

	if err := repo.db.WithContext(ctx).
		Preload("Permissions").
		Where("name = ?", name.String()).
		First(&roleM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoleNotFound
		}

		return nil, errors.Wrap(err, "failed to find role by name")
	}

	return toRoleDomain(&roleM), nil
}

// FindByNames retrieves all roles matching the given names.
// Any name without a matching role yields ErrRoleNotFound.
func (repo *roleRepository) FindByNames(ctx context.Context, names []entity.RoleName) ([]entity.Role, error) {
	if len(names) == 0 {
		return []entity.Role{}, nil
	}

	nameStrings := make([]string, 0, len(names))
	for _, name := range names {
		nameStrings = append(nameStrings, name.String())
	}

	var roleModels []*model.RoleModel
	if err := repo.db.WithContext(ctx).
		Where("name IN ?", nameStrings).
		Find(&roleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find roles by names")
	}

	found := make(map[string]struct{}, len(roleModels))
	for _, roleM := range roleModels {
		found[roleM.Name] = struct{}{}
	}
	for _, name := range nameStrings {
		if _, ok := found[name]; !ok {
			return nil, repository.ErrRoleNotFound
		}
	}

	roles := make([]entity.Role, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, *toRoleDomain(roleM))
	}

	return roles, nil
}

// List retrieves all roles ordered by name, preloading their permissions.
func (repo *roleRepository) List(ctx context.Context) ([]entity.Role, error) {
	var roleModels []*model.RoleModel

	if err := repo.db.WithContext(ctx).
		Preload("Permissions").
		Order("name ASC").
		Find(&roleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list roles")
	}

	roles := make([]entity.Role, 0, len(roleModels))
	for _, roleM := range roleModels {
		roles = append(roles, *toRoleDomain(roleM))
	}

	return roles, nil
}

// --- Mapper Functions ---

// toRoleDomain converts a GORM RoleModel to a domain Role entity.
func toRoleDomain(data *model.RoleModel) *entity.Role {
	if data == nil {
		return nil
	}

	permissions := make([]entity.Permission, 0, len(data.Permissions))
	for _, permissionM := range data.Permissions {
		permissions = append(permissions, entity.Permission{
			ID:          permissionM.ID,
			Name:        permissionM.Name,
			Description: permissionM.Description,
		})
	}

	return &entity.Role{
		ID:          data.ID,
		Name:        entity.RoleName(data.Name),
		Description: data.Description,
		Permissions: permissions,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
