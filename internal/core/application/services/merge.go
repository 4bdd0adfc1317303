package services

// orCurrent keeps current when the supplied value is the zero value. Updates copy the stored
// entity and override it only with the fields the caller actually supplied.
func orCurrent[T comparable](supplied, current T) T {
	var zero T
	if supplied == zero {
		return current
	}
	return supplied
}

// orCurrentFlag keeps current when the flag was not supplied.
func orCurrentFlag(supplied *bool, current bool) bool {
	if supplied == nil {
		return current
	}
	return *supplied
}
