// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and metadata.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-19 v0.2.0: Adjusted to the decorx code set

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	trace := err.StackTrace()
	if len(trace) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(trace[0].Function, "TestNew") {
		t.Errorf("StackTrace()[0].Function = %q, want caller of New", trace[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("key %s: %d", "a", 1)
	if err.Error() != "key a: 1" {
		t.Errorf("Newf() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap decorx error",
			err:      New("bad constant").WithCode(CodeInvalidConstant),
			message:  "wrapper message",
			wantMsg:  "wrapper message: bad constant",
			wantCode: CodeInvalidConstant,
		},
		{
			name:     "wrap fmt-wrapped decorx error",
			err:      fmt.Errorf("outer: %w", New("missing").WithCode(CodeNotFound)),
			message:  "wrapper message",
			wantMsg:  "wrapper message: outer: missing",
			wantCode: CodeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)

			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}

			if wrapped == nil {
				t.Fatal("Wrap() returned nil")
			}

			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}

			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}

			if !errors.Is(wrapped, tt.err) {
				t.Error("errors.Is() should find the wrapped error")
			}
		})
	}
}

func TestWithCodeDerivesSeverity(t *testing.T) {
	err := New("x").WithCode(CodeInvalidConfig)
	if err.Severity() != SeverityHigh {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityHigh)
	}

	explicit := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidInput)
	if explicit.Severity() != SeverityCritical {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestDetails(t *testing.T) {
	err := New("x").WithDetail("key", "NAME").WithDetail("value", 3)

	details := err.Details()
	if details["key"] != "NAME" || details["value"] != 3 {
		t.Errorf("Details() = %v", details)
	}

	details["key"] = "changed"
	if v, _ := err.Detail("key"); v != "NAME" {
		t.Error("Details() should return a copy")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrap(root, "middle"), "top")

	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}

	single := New("alone")
	if single.RootCause() != single {
		t.Error("RootCause() of an unwrapped error should be itself")
	}
}

func TestHelpers(t *testing.T) {
	err := fmt.Errorf("ctx: %w", New("x").WithCode(CodeInvalidFormat))

	if !HasCode(err, CodeInvalidFormat) {
		t.Error("HasCode() should see through fmt wrapping")
	}
	if HasCode(errors.New("plain"), CodeInvalidFormat) {
		t.Error("HasCode() on a plain error should be false")
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() on a plain error should be CodeUnknown")
	}
	if GetSeverity(err) != SeverityLow {
		t.Errorf("GetSeverity() = %v, want low", GetSeverity(err))
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "failed").
		WithCode(CodeInvalidConstant).
		WithOperation("decorator.Constant").
		WithDetail("key", "NAME")

	data, marshalErr := json.Marshal(err)
	if marshalErr != nil {
		t.Fatalf("MarshalJSON() error = %v", marshalErr)
	}

	var decoded map[string]interface{}
	if unmarshalErr := json.Unmarshal(data, &decoded); unmarshalErr != nil {
		t.Fatalf("unmarshal error = %v", unmarshalErr)
	}

	if decoded["code"] != string(CodeInvalidConstant) {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "decorator.Constant" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "cause" {
		t.Errorf("cause = %v", decoded["cause"])
	}
}

func TestString(t *testing.T) {
	s := New("boom").WithCode(CodeNotFound).WithOperation("document.ReadFile").
		WithDetail("path", "a.json").String()

	for _, want := range []string{"Error: boom", "Code: NOT_FOUND", "Operation: document.ReadFile", "path=a.json"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}
