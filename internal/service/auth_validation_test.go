package service

import (
	"errors"
	"testing"
)

func TestValidateRegisterInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   RegisterInput
		wantErr error
	}{
		{
			name:  "valid input",
			input: RegisterInput{FullName: "Ada Lovelace", Email: "ada@example.com", Password: "s3cret!"},
		},
		{
			name:    "empty full name",
			input:   RegisterInput{FullName: "", Email: "ada@example.com", Password: "s3cret!"},
			wantErr: ErrFullNameRequired,
		},
		{
			name:    "whitespace full name",
			input:   RegisterInput{FullName: "   ", Email: "ada@example.com", Password: "s3cret!"},
			wantErr: ErrFullNameRequired,
		},
		{
			name:    "email without at sign",
			input:   RegisterInput{FullName: "Ada", Email: "ada.example.com", Password: "s3cret!"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email without domain dot",
			input:   RegisterInput{FullName: "Ada", Email: "ada@example", Password: "s3cret!"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "email with spaces",
			input:   RegisterInput{FullName: "Ada", Email: "ada @example.com", Password: "s3cret!"},
			wantErr: ErrInvalidEmail,
		},
		{
			name:    "short password",
			input:   RegisterInput{FullName: "Ada", Email: "ada@example.com", Password: "abc12"},
			wantErr: ErrPasswordTooShort,
		},
		{
			name:  "six character password is enough",
			input: RegisterInput{FullName: "Ada", Email: "ada@example.com", Password: "abc123"},
		},
		{
			// Name is checked before email, email before password.
			name:    "name error wins over bad email",
			input:   RegisterInput{FullName: "", Email: "nope", Password: "x"},
			wantErr: ErrFullNameRequired,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateRegisterInput(tt.input)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
