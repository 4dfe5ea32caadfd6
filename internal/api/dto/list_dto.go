package dto

import "mediavault/internal/api/forms"

// FormState reports a bound form back to the client: whether it applied and
// which field errors it collected. Invalid facet forms come back here while
// the list itself still renders.
type FormState struct {
	Valid  bool         `json:"valid"`
	Errors forms.Errors `json:"errors,omitempty"`
}

func SearchFormState(f *forms.SearchForm) FormState {
	return FormState{Valid: f.Valid(), Errors: f.Errors()}
}

func FacetFormState(f *forms.FacetForm) FormState {
	return FormState{Valid: !f.Bound() || f.Valid(), Errors: f.Errors()}
}

// Pagination is the shared page envelope of every list response.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// MediaListResponse is the payload of the book/film/series list endpoints.
type MediaListResponse struct {
	Data       []MediaResponse `json:"data"`
	Pagination Pagination      `json:"pagination"`

	SearchForm        FormState `json:"search_form"`
	GenreFilterForm   FormState `json:"genre_filter_form"`
	CreatorFilterForm FormState `json:"creator_filter_form"`

	TypeChoices   []string `json:"type_choices,omitempty"`
	StatusChoices []string `json:"status_choices,omitempty"`
}

// TrackedListResponse is the payload of the genre/creator list endpoints,
// which carry the session's active media kind.
type TrackedListResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`

	SearchForm  FormState `json:"search_form"`
	Media       string    `json:"media"`
	RedirectURL string    `json:"redirect_url"`
}
