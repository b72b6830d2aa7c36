package booking

// StrPtrIfNotEmpty maps an empty submission to NULL so unique indexes
// on optional columns ignore absent values.
func StrPtrIfNotEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func StrDeref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
