package blob

import "errors"

var (
	// ErrUpload возвращается при ошибке загрузки объекта
	ErrUpload = errors.New("blob.storage: upload failed")

	// ErrList возвращается при ошибке получения списка объектов
	ErrList = errors.New("blob.storage: list failed")

	// ErrRemove возвращается при ошибке удаления объектов
	ErrRemove = errors.New("blob.storage: remove failed")

	// ErrTooLarge возвращается, когда файл превышает допустимый размер
	ErrTooLarge = errors.New("blob.storage: file too large")

	// ErrUnsupportedType возвращается для файлов, не являющихся изображениями
	ErrUnsupportedType = errors.New("blob.storage: unsupported content type")
)
