package armor

import "strconv"

func parsePieceID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, errMalformed("invalid piece id %q", s)
	}
	return id, nil
}

func itoa(id int) string {
	return strconv.Itoa(id)
}
