package domain

// Word represents an English/Finnish word pair
type Word struct {
	ID      int64  `json:"id"`
	English string `json:"english" validate:"required,english"`
	Finnish string `json:"finnish" validate:"required,finnish"`
}

// FieldError describes a single rejected field.
// The same shape is produced by the request checks and by the domain validator.
type FieldError struct {
	Type     string `json:"type"`
	Value    any    `json:"value"`
	Msg      string `json:"msg"`
	Path     string `json:"path"`
	Rule     string `json:"rule"`
	Location string `json:"location,omitempty"`
}
