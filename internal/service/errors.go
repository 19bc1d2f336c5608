package service

import "errors"

var (
	// ErrShorten покрывает любой неуспех обмена ссылки: транспорт, таймаут,
	// не-JSON тело, status != "success". Вызывающему коду различие не нужно
	ErrShorten = errors.New("shorten request failed")
)
