package dto

import (
	"dockhub/internal/domains/profile/model"
	"dockhub/shared"
	"dockhub/shared/constant"
	gDto "dockhub/shared/dto"
	gModel "dockhub/shared/model"
	"dockhub/shared/timezone"
	"dockhub/shared/validator"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

var SortableColumns = []string{
	constant.FieldCreatedAt,
	model.FieldEmail,
	model.FieldFullName,
	model.FieldRole,
	model.FieldLastLogin,
}

type CreateProfileRequest struct {
	Email    string `json:"email"     validate:"required,email,max=100"`
	Password string `json:"password"  validate:"required,min=8,max=72"`
	FullName string `json:"full_name" validate:"required,min=2,max=100"`
	Role     string `json:"role"      validate:"omitempty,oneof=admin csr"`
}

// ToModel builds an active profile. Role defaults to csr.
func (r *CreateProfileRequest) ToModel(user, hashedPassword string) model.Profile {
	role := r.Role
	if role == "" {
		role = constant.RoleCSR
	}

	return model.Profile{
		ID:       uuid.NewString(),
		Email:    strings.ToLower(strings.TrimSpace(r.Email)),
		Password: hashedPassword,
		FullName: strings.TrimSpace(r.FullName),
		Role:     role,
		Active:   true,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}
}

type ProfileResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	FullName  string  `json:"full_name"`
	Role      string  `json:"role"`
	Active    bool    `json:"active"`
	LastLogin *string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *ProfileResponse) FromModel(profile model.Profile) {
	r.ID = profile.ID
	r.Email = profile.Email
	r.FullName = profile.FullName
	r.Role = profile.Role
	r.Active = profile.Active
	r.LastLogin = gDto.OptionalTimestamp(profile.LastLogin)
	r.Metadata.FromModel(profile.Metadata)
}

type GetProfilesResponse struct {
	Profiles  []ProfileResponse `json:"profiles"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetProfilesResponse) FromModels(models []model.Profile, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Profiles = make([]ProfileResponse, len(models))
	for i, mod := range models {
		r.Profiles[i].FromModel(mod)
	}
}

// Filter narrows the staff listing.
type Filter struct {
	Role   string `validate:"omitempty,oneof=admin csr"`
	Active *bool
	Search string `validate:"omitempty,max=100"`
}

func (f *Filter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.Role = strings.TrimSpace(query.Get("role"))
	f.Active = shared.ConvertStringToBool(query.Get("active"))
	f.Search = strings.TrimSpace(query.Get("search"))
}

func (f *Filter) ToFilterGroup() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.Role != "" {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Value:    f.Role,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if f.Active != nil {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Value:    *f.Active,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if f.Search != "" {
		group.Filters = append(group.Filters, gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					Field:    model.FieldEmail,
					Value:    f.Search,
					Operator: gDto.FilterOperatorLike,
					Table:    model.TableName,
					ArgName:  "search_email",
				},
				gDto.Filter{
					Field:    model.FieldFullName,
					Value:    f.Search,
					Operator: gDto.FilterOperatorLike,
					Table:    model.TableName,
					ArgName:  "search_name",
				},
			},
		})
	}

	return group
}

func ByEmail(email string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldEmail,
				Value:    strings.ToLower(strings.TrimSpace(email)),
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func (f *Filter) Validate() error {
	return validator.ValidateStruct(f) //nolint:wrapcheck
}

// UpdateProfileRequest is the admin edit of a staff account. Zero fields are left untouched.
type UpdateProfileRequest struct {
	FullName string `db:"full_name" json:"full_name" validate:"omitempty,min=2,max=100"`
	Role     string `db:"role"      json:"role"      validate:"omitempty,oneof=admin csr"`
	Active   *bool  `db:"active"    json:"active"`
}

func (r UpdateProfileRequest) IsEmpty() bool {
	return r.FullName == "" && r.Role == "" && r.Active == nil
}
