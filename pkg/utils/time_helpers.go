package utils

import "time"

const DateOnlyFormat = "2006-01-02"

// FormatDatePtr — дата в формате YYYY-MM-DD, nil остаётся nil.
func FormatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateOnlyFormat)
	return &s
}

// FormatRFC3339Ptr — ISO-8601 со временем, nil остаётся nil.
func FormatRFC3339Ptr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

// ParseDatePtr разбирает YYYY-MM-DD; пустая строка — nil без ошибки.
func ParseDatePtr(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateOnlyFormat, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
