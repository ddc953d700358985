package buildtrack

import (
	"errors"
	"net/url"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/khrees2412/careerkit/pkg/models"
)

// InvalidURLMessage is shown next to a link that fails validation
const InvalidURLMessage = "Please enter a valid URL (e.g., https://...)"

// LinkErrors maps a link field ("lovableLink", "githubLink", "deployLink") to
// its validation message
type LinkErrors map[string]string

func (e LinkErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return "invalid links: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		u, err := url.Parse(fl.Field().String())
		if err != nil {
			return false
		}
		return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
	})
	return v
}

// ValidateLinks checks each non-empty link. Empty links are not errors here;
// they only keep the project from shipping.
func ValidateLinks(links models.SubmissionLinks) LinkErrors {
	err := validate.Struct(links)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return LinkErrors{"": err.Error()}
	}
	out := make(LinkErrors, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = InvalidURLMessage
	}
	return out
}
