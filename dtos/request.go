package dtos

import (
	"encoding/json"
	"errors"

	"github.com/go-playground/validator/v10"
)

// Action discriminates the sync protocol. The handler switches over these
// constants exhaustively; adding an action is a compile-visible change.
type Action string

const (
	ActionRead            Action = "read"
	ActionWrite           Action = "write"
	ActionWriteCategories Action = "write-categories"
	ActionWriteBrands     Action = "write-brands"
	ActionWriteLegal      Action = "write-legal"
)

// TabKey is a logical tab identifier the caller may remap to an actual sheet
// tab title via tabNames, so tabs can be renamed without redeploying.
type TabKey string

const (
	TabProductsTodo   TabKey = "PRODUCTS_TODO"
	TabCategories     TabKey = "CATEGORIES"
	TabProperties     TabKey = "PROPERTIES"
	TabLegal          TabKey = "LEGAL"
	TabBrands         TabKey = "BRANDS"
	TabFilter         TabKey = "FILTER"
	TabFilterDefaults TabKey = "FILTER_DEFAULTS"
	TabResponses      TabKey = "RESPONSES"
)

var defaultTabTitles = map[TabKey]string{
	TabProductsTodo:   "Products",
	TabCategories:     "Categories",
	TabProperties:     "Properties",
	TabLegal:          "Legal",
	TabBrands:         "Brands",
	TabFilter:         "Filter",
	TabFilterDefaults: "FilterDefaults",
	TabResponses:      "Responses",
}

// ValidationError names the offending request parameter. It never mentions
// credentials or internal state.
type ValidationError struct {
	Param string
}

func (e *ValidationError) Error() string {
	return "Invalid " + e.Param + " parameter"
}

// ErrBadBody covers JSON that could not be decoded at all.
var ErrBadBody = errors.New("Invalid request body")

var validate = validator.New()

// Envelope is the raw action-tagged request. Payload fields are parsed and
// validated per action by the ParseXxx methods, which return typed payloads
// so validation and field access cannot drift apart.
type Envelope struct {
	Action        Action            `json:"action"`
	TabNames      map[string]string `json:"tabNames"`
	RowData       []string          `json:"rowData"`
	CategoryPaths []string          `json:"categoryPaths"`
	Brands        []BrandInput      `json:"brands"`
	PropertyName  string            `json:"propertyName"`
	Value         string            `json:"value"`
}

// ParseRequest decodes and validates the envelope: JSON shape, action enum
// and tabNames bounds. Per-action payloads are validated separately.
func ParseRequest(body []byte) (*Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, ErrBadBody
	}

	switch env.Action {
	case ActionRead, ActionWrite, ActionWriteCategories, ActionWriteBrands, ActionWriteLegal:
	default:
		return nil, &ValidationError{"action"}
	}

	for key, title := range env.TabNames {
		if _, known := defaultTabTitles[TabKey(key)]; !known {
			return nil, &ValidationError{"tabNames"}
		}
		if len(title) < 1 || len(title) > 254 {
			return nil, &ValidationError{"tabNames"}
		}
	}

	return &env, nil
}

// Tab resolves a logical tab key to the actual sheet tab title, honoring the
// caller's tabNames overrides.
func (e *Envelope) Tab(key TabKey) string {
	if title, ok := e.TabNames[string(key)]; ok {
		return title
	}
	return defaultTabTitles[key]
}

// WriteRowPayload is the `write` action: one submission row appended to the
// responses tab in the client's fixed column order.
type WriteRowPayload struct {
	RowData []string `validate:"min=1,dive,max=9999"`
}

func (e *Envelope) ParseWriteRow() (*WriteRowPayload, error) {
	p := &WriteRowPayload{RowData: e.RowData}
	if e.RowData == nil {
		return nil, &ValidationError{"rowData"}
	}
	if err := validate.Struct(p); err != nil {
		return nil, &ValidationError{"rowData"}
	}
	return p, nil
}

// WriteCategoriesPayload is the `write-categories` action: the full flat
// path list that replaces the categories tab.
type WriteCategoriesPayload struct {
	CategoryPaths []string `validate:"dive,min=1,max=999"`
}

func (e *Envelope) ParseWriteCategories() (*WriteCategoriesPayload, error) {
	if e.CategoryPaths == nil {
		return nil, &ValidationError{"categoryPaths"}
	}
	p := &WriteCategoriesPayload{CategoryPaths: e.CategoryPaths}
	if err := validate.Struct(p); err != nil {
		return nil, &ValidationError{"categoryPaths"}
	}
	return p, nil
}

// BrandInput is one row of the brand list replace.
type BrandInput struct {
	Brand     string `json:"brand" validate:"required,min=1,max=254"`
	BrandName string `json:"brandName" validate:"max=254"`
	Website   string `json:"website" validate:"max=1999"`
}

type WriteBrandsPayload struct {
	Brands []BrandInput `validate:"dive"`
}

func (e *Envelope) ParseWriteBrands() (*WriteBrandsPayload, error) {
	if e.Brands == nil {
		return nil, &ValidationError{"brands"}
	}
	p := &WriteBrandsPayload{Brands: e.Brands}
	if err := validate.Struct(p); err != nil {
		return nil, &ValidationError{"brands"}
	}
	return p, nil
}

// WriteLegalPayload is the `write-legal` action: upsert one allowed value
// onto a property's row.
type WriteLegalPayload struct {
	PropertyName string
	Value        string
}

func (e *Envelope) ParseWriteLegal() (*WriteLegalPayload, error) {
	if err := validate.Var(e.PropertyName, "required,min=1,max=255"); err != nil {
		return nil, &ValidationError{"propertyName"}
	}
	if err := validate.Var(e.Value, "required,min=1,max=255"); err != nil {
		return nil, &ValidationError{"value"}
	}
	return &WriteLegalPayload{PropertyName: e.PropertyName, Value: e.Value}, nil
}
