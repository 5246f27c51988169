// Package mocks provides centralized mock implementations for testing.
//
// This package contains mock implementations of interfaces used throughout
// the application, facilitating consistent and DRY testing across the
// codebase. Instead of defining inline mocks in individual test files,
// these standardized mock implementations can be reused.
//
// Every mock follows the same pattern: exported function fields override
// individual methods, and a small in-memory default implementation backs
// the methods when no override is set.
//
// Usage:
//
//	import "github.com/1himan/task-management-assignment/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    jwtService := &mocks.MockJWTService{
//	        GenerateTokenFn: func(ctx context.Context, userID string) (string, error) {
//	            return "mocked-token", nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
package mocks
