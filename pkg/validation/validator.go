package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// emailRx is the exact address shape the API accepts; kept as a regex
// instead of the validator's built-in email rule for compatibility.
var emailRx = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var initOnce sync.Once

// Init configures the global validator used by Gin's binding.
// - Uses JSON tag names in errors.
// - Registers the legacy email format rule as the "emailfmt" tag.
// Safe to call more than once; only the first call does the work.
func Init() {
	initOnce.Do(setup)
}

func setup() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		_ = v.RegisterValidation("emailfmt", func(fl validator.FieldLevel) bool {
			return emailRx.MatchString(fl.Field().String())
		})
	}
}

// Messages maps "<field>.<tag>" or bare "<tag>" keys to the message the
// API returns for that failure. Field-specific entries win over tag-wide
// ones.
type Messages map[string]string

// Resolve picks the message for the first field error in err. Binding
// failures that are not validator errors (malformed JSON, wrong types)
// fall through to the fallback.
func Resolve(err error, msgs Messages, fallback string) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if m, ok := msgs[fe.Field()+"."+fe.Tag()]; ok {
			return m
		}
		if m, ok := msgs[fe.Tag()]; ok {
			return m
		}
	}
	return fallback
}
