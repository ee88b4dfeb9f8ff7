package create_user

import "strings"

func validateRequest(req *Request) error {
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Department = strings.TrimSpace(req.Department)

	if req.Email == "" || req.FullName == "" || req.Department == "" {
		return ErrMissingFields
	}
	return nil
}
