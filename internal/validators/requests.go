// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"slices"
	"strings"

	"github.com/Syncano/syncano-dotnet-sub001/models"
)

// Field name constants used to scope validation of CRUD requests. Fields
// shared with subscriptions (FieldProjectID, FieldCollection,
// FieldOptionalCollection) apply to the embedded CollectionRef.
const (
	FieldName         = "name"
	FieldNewName      = "new_name"
	FieldDataRef      = "data_ref"
	FieldDataIDs      = "data_ids"
	FieldState        = "state"
	FieldStatus       = "status"
	FieldLimit        = "limit"
	FieldUserRef      = "user_ref"
	FieldAdminRef     = "admin_ref"
	FieldRoleID       = "role_id"
	FieldAPIClientID  = "api_client_id"
	FieldDescription  = "description"
	FieldKeyType      = "key_type"
	FieldPermission   = "permission"
	FieldUpdateFields = "update_fields"
)

var allowedStates = []models.DataObjectState{
	models.StatePending,
	models.StateModerated,
	models.StateRejected,
}

var allowedStatuses = []models.CollectionStatus{
	models.CollectionActive,
	models.CollectionInactive,
}

var allowedPermissions = []models.Permission{
	models.PermissionReadData,
	models.PermissionCreateData,
	models.PermissionUpdateData,
	models.PermissionDeleteData,
	models.PermissionSubscribe,
}

var allowedKeyTypes = []models.APIKeyType{
	models.APIKeyBackend,
	models.APIKeyUser,
}

// RequestValidator implements the Validator interface for the request
// models of the CRUD services.
type RequestValidator struct {
	targets *SubscriptionValidator
}

// NewRequestValidator constructs a new RequestValidator and returns it as
// the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{targets: &SubscriptionValidator{}}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Only value forms are accepted; services
// always pass requests by value.
//
// Returns ErrUnsupportedType if obj does not match any known model.
// Optional fields restrict validation to the named subset; when omitted,
// the required fields of the request are validated.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ProjectRef:
		return v.validateProject(value.ProjectID, "", false, fields...)
	case models.NewProjectRequest:
		return v.validateProject("", value.Name, true, fields...)
	case models.UpdateProjectRequest:
		return v.validateProject(value.ProjectID, value.Name, false, fields...)

	case models.CollectionRef:
		return v.withDefaults(fields, FieldProjectID, FieldCollection).
			check(v.collectionRef(value))
	case models.NewCollectionRequest:
		return v.validateNewCollection(value, fields...)
	case models.GetCollectionsRequest:
		return v.validateGetCollections(value, fields...)
	case models.UpdateCollectionRequest:
		return v.withDefaults(fields, FieldProjectID, FieldCollection, FieldUpdateFields).
			check(v.collectionRef(value.CollectionRef), func(f string) (bool, error) {
				if f != FieldUpdateFields {
					return false, nil
				}
				if value.Name == "" && value.Description == "" {
					return true, ErrNoFieldsToUpdate
				}
				return true, nil
			})

	case models.FolderRequest:
		return v.withDefaults(fields, FieldProjectID, FieldCollection, FieldName).
			check(v.collectionRef(value.CollectionRef), requireField(FieldName, value.Name, ErrEmptyName))
	case models.UpdateFolderRequest:
		return v.withDefaults(fields, FieldProjectID, FieldCollection, FieldName, FieldNewName).
			check(v.collectionRef(value.CollectionRef),
				requireField(FieldName, value.Name, ErrEmptyName),
				requireField(FieldNewName, value.NewName, ErrNoFieldsToUpdate))

	case models.NewDataObjectRequest:
		return v.validateNewDataObject(value, fields...)
	case models.GetDataObjectsRequest:
		return v.validateDataFilter(value.CollectionRef, value.DataIDs, value.State, value.Limit, fields...)
	case models.DeleteDataObjectsRequest:
		return v.validateDataFilter(value.CollectionRef, value.DataIDs, value.State, 0, fields...)
	case models.DataObjectRef:
		return v.withDefaults(fields, FieldProjectID, FieldCollection, FieldDataRef).
			check(v.dataRef(value))
	case models.UpdateDataObjectRequest:
		return v.withDefaults(fields, FieldProjectID, FieldCollection, FieldDataRef, FieldState).
			check(v.dataRef(value.DataObjectRef), stateField(value.State))

	case models.NewUserRequest:
		return v.withDefaults(fields, FieldName).
			check(requireField(FieldName, value.Name, ErrEmptyName))
	case models.UserRef:
		return v.withDefaults(fields, FieldUserRef).
			check(refField(FieldUserRef, value.UserID, value.UserName, ErrEmptyUserRef))
	case models.UpdateUserRequest:
		return v.withDefaults(fields, FieldUserRef, FieldUpdateFields).
			check(refField(FieldUserRef, value.UserID, value.UserName, ErrEmptyUserRef),
				requireField(FieldUpdateFields, value.Nick+value.Password, ErrNoFieldsToUpdate))

	case models.NewAPIKeyRequest:
		return v.withDefaults(fields, FieldDescription, FieldKeyType).
			check(requireField(FieldDescription, value.Description, ErrEmptyDescription),
				func(f string) (bool, error) {
					if f != FieldKeyType {
						return false, nil
					}
					if value.Type != "" && !slices.Contains(allowedKeyTypes, value.Type) {
						return true, ErrInvalidKeyType
					}
					return true, nil
				})
	case models.APIKeyRef:
		return v.withDefaults(fields, FieldAPIClientID).
			check(requireField(FieldAPIClientID, value.APIClientID, ErrEmptyAPIClientID))
	case models.UpdateAPIKeyRequest:
		return v.withDefaults(fields, FieldAPIClientID, FieldDescription).
			check(requireField(FieldAPIClientID, value.APIClientID, ErrEmptyAPIClientID),
				requireField(FieldDescription, value.Description, ErrEmptyDescription))
	case models.AuthorizeAPIKeyRequest:
		return v.withDefaults(fields, FieldAPIClientID, FieldPermission).
			check(requireField(FieldAPIClientID, value.APIClientID, ErrEmptyAPIClientID),
				func(f string) (bool, error) {
					if f != FieldPermission {
						return false, nil
					}
					if !slices.Contains(allowedPermissions, value.Permission) {
						return true, ErrInvalidPermission
					}
					return true, nil
				})

	case models.AdministratorRef:
		return v.withDefaults(fields, FieldAdminRef).
			check(refField(FieldAdminRef, value.AdminID, value.AdminEmail, ErrEmptyAdminRef))
	case models.UpdateAdministratorRequest:
		return v.withDefaults(fields, FieldAdminRef, FieldRoleID).
			check(refField(FieldAdminRef, value.AdminID, value.AdminEmail, ErrEmptyAdminRef),
				requireField(FieldRoleID, value.RoleID, ErrEmptyRoleID))

	default:
		return ErrUnsupportedType
	}
}

// fieldCheck validates one named field. It reports handled=false when the
// field is not its concern so the next check can try it.
type fieldCheck func(field string) (handled bool, err error)

type fieldSet []string

func (v *RequestValidator) withDefaults(fields []string, defaults ...string) fieldSet {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

// check runs every field through checks in order. A field no check handles
// yields ErrUnknownField.
func (fs fieldSet) check(checks ...fieldCheck) error {
	for _, f := range fs {
		handled := false
		for _, c := range checks {
			ok, err := c(f)
			if err != nil {
				return err
			}
			if ok {
				handled = true
				break
			}
		}
		if !handled {
			return ErrUnknownField
		}
	}
	return nil
}

func requireField(name, value string, errEmpty error) fieldCheck {
	return func(f string) (bool, error) {
		if f != name {
			return false, nil
		}
		if strings.TrimSpace(value) == "" {
			return true, errEmpty
		}
		return true, nil
	}
}

func refField(name, id, alt string, errEmpty error) fieldCheck {
	return func(f string) (bool, error) {
		if f != name {
			return false, nil
		}
		return true, exactlyOne(id, alt, errEmpty)
	}
}

func stateField(state models.DataObjectState) fieldCheck {
	return func(f string) (bool, error) {
		if f != FieldState {
			return false, nil
		}
		if state != "" && !slices.Contains(allowedStates, state) {
			return true, ErrInvalidState
		}
		return true, nil
	}
}

func (v *RequestValidator) collectionRef(ref models.CollectionRef) fieldCheck {
	return func(f string) (bool, error) {
		switch f {
		case FieldProjectID, FieldCollection, FieldOptionalCollection:
			return true, v.targets.validateTarget(models.CollectionTarget(ref), f)
		}
		return false, nil
	}
}

func (v *RequestValidator) dataRef(ref models.DataObjectRef) fieldCheck {
	collection := v.collectionRef(ref.CollectionRef)
	return func(f string) (bool, error) {
		if f == FieldDataRef {
			return true, exactlyOne(ref.DataID, ref.DataKey, ErrEmptyDataRef)
		}
		return collection(f)
	}
}

// validateProject covers ProjectRef, NewProjectRequest and
// UpdateProjectRequest. requireName is set for creation only; updates may
// leave the name unchanged.
func (v *RequestValidator) validateProject(projectID, name string, requireName bool, fields ...string) error {
	defaults := []string{FieldProjectID}
	if requireName {
		defaults = []string{FieldName}
	}

	return v.withDefaults(fields, defaults...).check(
		requireField(FieldProjectID, projectID, ErrEmptyProjectID),
		requireField(FieldName, name, ErrEmptyName),
	)
}

func (v *RequestValidator) validateNewCollection(r models.NewCollectionRequest, fields ...string) error {
	return v.withDefaults(fields, FieldProjectID, FieldName).check(
		requireField(FieldProjectID, r.ProjectID, ErrEmptyProjectID),
		requireField(FieldName, r.Name, ErrEmptyName),
	)
}

func (v *RequestValidator) validateGetCollections(r models.GetCollectionsRequest, fields ...string) error {
	return v.withDefaults(fields, FieldProjectID, FieldStatus).check(
		requireField(FieldProjectID, r.ProjectID, ErrEmptyProjectID),
		func(f string) (bool, error) {
			if f != FieldStatus {
				return false, nil
			}
			if r.Status != "" && !slices.Contains(allowedStatuses, r.Status) {
				return true, ErrInvalidStatus
			}
			return true, nil
		},
	)
}

// validateNewDataObject requires the owning collection; every content field
// is optional.
func (v *RequestValidator) validateNewDataObject(r models.NewDataObjectRequest, fields ...string) error {
	return v.withDefaults(fields, FieldProjectID, FieldCollection, FieldState).check(
		v.collectionRef(r.CollectionRef),
		stateField(r.State),
	)
}

// validateDataFilter covers data.get, data.count and data.delete filters.
func (v *RequestValidator) validateDataFilter(ref models.CollectionRef, ids []string, state models.DataObjectState, limit int, fields ...string) error {
	return v.withDefaults(fields, FieldProjectID, FieldCollection, FieldDataIDs, FieldState, FieldLimit).check(
		v.collectionRef(ref),
		stateField(state),
		func(f string) (bool, error) {
			switch f {
			case FieldDataIDs:
				if slices.ContainsFunc(ids, func(id string) bool { return strings.TrimSpace(id) == "" }) {
					return true, ErrEmptyDataIDs
				}
				return true, nil
			case FieldLimit:
				if limit < 0 {
					return true, ErrInvalidLimit
				}
				return true, nil
			}
			return false, nil
		},
	)
}
