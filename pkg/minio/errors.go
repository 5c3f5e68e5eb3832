package minio

import "fmt"

// Error codes classifying storage failures.
const (
	ErrCodeConnection     = "CONNECTION_ERROR"
	ErrCodeBucketNotFound = "BUCKET_NOT_FOUND"
	ErrCodeObjectNotFound = "OBJECT_NOT_FOUND"
	ErrCodePermission     = "PERMISSION_DENIED"
	ErrCodeInvalidInput   = "INVALID_INPUT"
)

// StorageError is the typed error returned by all MinIO operations.
type StorageError struct {
	Code      string
	Message   string
	Operation string
	Cause     error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *StorageError) Unwrap() error {
	return e.Cause
}

// NewConnectionError wraps a connectivity failure.
func NewConnectionError(cause error) *StorageError {
	return &StorageError{Code: ErrCodeConnection, Message: "storage connection failed", Cause: cause}
}

// NewBucketNotFoundError reports a missing bucket.
func NewBucketNotFoundError(bucketName string) *StorageError {
	return &StorageError{Code: ErrCodeBucketNotFound, Message: fmt.Sprintf("bucket not found: %s", bucketName)}
}

// NewObjectNotFoundError reports a missing object.
func NewObjectNotFoundError(objectName string) *StorageError {
	return &StorageError{Code: ErrCodeObjectNotFound, Message: fmt.Sprintf("object not found: %s", objectName)}
}

// NewInvalidInputError reports an invalid request parameter.
func NewInvalidInputError(message string) *StorageError {
	return &StorageError{Code: ErrCodeInvalidInput, Message: message}
}

// IsObjectNotFound reports whether err is a missing-object StorageError.
func IsObjectNotFound(err error) bool {
	storageErr, ok := err.(*StorageError)
	return ok && storageErr.Code == ErrCodeObjectNotFound
}
