package experiences

import "errors"

var (
	// ErrExperienceNotFound возвращается, когда впечатление не найдено
	ErrExperienceNotFound = errors.New("experiences.service: experience not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("experiences.service: internal error")
)
