package util

// MapSlice applies a converter function to each element of a slice and returns a new slice.
func MapSlice[T any, R any](items []T, converter func(T) R) []R {
	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, converter(item))
	}
	return result
}

// ToInterfaceSlice converts a slice of any type to []interface{}.
// Useful for building variadic query arguments.
func ToInterfaceSlice[T any](items []T) []interface{} {
	result := make([]interface{}, len(items))
	for i, item := range items {
		result[i] = item
	}
	return result
}
