package validation

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_.-]{1,64}$`)
	searchRe   = regexp.MustCompile(`^[A-Za-z0-9@._+\- ]{0,128}$`)
)

// validate is Gin's binding engine once Init has registered the custom
// validations on it. Username checks route through it from then on.
var validate *validator.Validate

// Init registers the lab's custom validations on Gin's binding engine.
// After Init, ValidUsername and the strict policy evaluate the charset
// rule through the registered "username" validation.
func Init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernameRe.MatchString(fl.Field().String())
		})
		validate = v
	}
}

// ValidUsername reports whether u fits the restricted username charset.
func ValidUsername(u string) bool {
	if validate != nil {
		return validate.Var(u, "username") == nil
	}
	return usernameRe.MatchString(u)
}

// ValidSearch reports whether q fits the restricted search charset. The
// empty string is valid and means an intentionally permissive match.
func ValidSearch(q string) bool {
	return searchRe.MatchString(q)
}

// Policy constrains raw form input before it reaches the query layer.
// The strict policy guards the bound variant; the permissive policy lets
// everything through so the interpolated variant stays exploitable.
type Policy interface {
	// AcceptUsername gates the login lookup. A rejected username never
	// reaches the store.
	AcceptUsername(u string) bool
	// SanitizeSearch returns the search term to use, substituting the
	// empty term for anything outside the allowed charset or length.
	SanitizeSearch(q string) string
}

type strictPolicy struct{}

func (strictPolicy) AcceptUsername(u string) bool { return ValidUsername(u) }

func (strictPolicy) SanitizeSearch(q string) string {
	if !ValidSearch(q) {
		return ""
	}
	return q
}

type permissivePolicy struct{}

func (permissivePolicy) AcceptUsername(string) bool     { return true }
func (permissivePolicy) SanitizeSearch(q string) string { return q }

// Strict returns the policy paired with the bound query variant.
func Strict() Policy { return strictPolicy{} }

// Permissive returns the policy paired with the interpolated variant.
func Permissive() Policy { return permissivePolicy{} }
