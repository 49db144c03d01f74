package handler

import (
	"bytes"
	"regexp"
	"strconv"

	"wordquiz/internal/domain"
	"wordquiz/internal/validation"

	"github.com/gofiber/fiber/v2"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

var wordFields = []struct {
	path    string
	pattern *regexp.Regexp
}{
	{path: "english", pattern: validation.EnglishPattern},
	{path: "finnish", pattern: validation.FinnishPattern},
}

// ErrorsResponse is the 400 body listing rejected fields
type ErrorsResponse struct {
	Errors []domain.FieldError `json:"errors"`
}

const wordIDKey = "wordID"

// requireWordID accepts only plain digit ids. Signed forms such as -1 or +1
// pass the int constraint but are rejected like an unmatched route.
func requireWordID(c *fiber.Ctx) error {
	raw := c.Params("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if !digitsOnly.MatchString(raw) || err != nil {
		return fiber.NewError(fiber.StatusNotFound, "Cannot "+c.Method()+" "+c.OriginalURL())
	}
	c.Locals(wordIDKey, id)
	return c.Next()
}

// wordID returns the id stored by requireWordID
func wordID(c *fiber.Ctx) int64 {
	id, _ := c.Locals(wordIDKey).(int64)
	return id
}

// decodeBody parses the request body as a JSON object. An empty body is an empty object.
func decodeBody(c *fiber.Ctx) (map[string]any, error) {
	payload := map[string]any{}

	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		return payload, nil
	}

	if err := c.App().Config().JSONDecoder(body, &payload); err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
	}
	return payload, nil
}

// checkWordBody checks that english and finnish are letter-only strings
func checkWordBody(payload map[string]any) (domain.Word, []domain.FieldError) {
	var word domain.Word
	var errs []domain.FieldError

	for _, f := range wordFields {
		raw, present := payload[f.path]
		s, isString := raw.(string)

		var rule string
		switch {
		case !present || raw == nil || (isString && s == ""):
			rule = validation.RuleRequired
		case !isString:
			rule = validation.RuleType
		case !f.pattern.MatchString(s):
			rule = validation.RulePattern
		}

		if rule != "" {
			fe := validation.NewFieldError(f.path, rule, raw)
			fe.Location = "body"
			errs = append(errs, fe)
			continue
		}

		if f.path == "english" {
			word.English = s
		} else {
			word.Finnish = s
		}
	}

	return word, errs
}

func (h *Handler) wordFromRequest(c *fiber.Ctx) (domain.Word, []domain.FieldError, error) {
	payload, err := decodeBody(c)
	if err != nil {
		return domain.Word{}, nil, err
	}
	word, errs := checkWordBody(payload)
	return word, errs, nil
}
