package utils

import "strconv"

// ParseUint64Slice разбирает список строковых идентификаторов.
func ParseUint64Slice(s []string) ([]uint64, error) {
	if len(s) == 0 {
		return nil, nil
	}

	result := make([]uint64, 0, len(s))
	for _, v := range s {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, err
		}
		result = append(result, id)
	}
	return result, nil
}
