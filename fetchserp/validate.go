package fetchserp

// required builds the error for missing mandatory fields of method
func required(method string, fields ...string) *ValidationError {
	return &ValidationError{Method: method, Fields: fields}
}

// requiredAnyOf builds the error for a requirement any one field satisfies
func requiredAnyOf(method string, fields ...string) *ValidationError {
	return &ValidationError{Method: method, Fields: fields, AnyOf: true}
}

// missingFields takes name/value pairs and returns the names whose value is empty.
func missingFields(pairs ...string) []string {
	var missing []string
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			missing = append(missing, pairs[i])
		}
	}
	return missing
}
