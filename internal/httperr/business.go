package httperr

import "errors"

// BusinessError carrega só o código; status e mensagem ficam na camada HTTP.
// É comparável, então errors.Is funciona com as variáveis Err* dos casos de uso.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// CodeOf devolve o código de negócio presente na cadeia de err.
func CodeOf(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

func IsBusiness(err error, code string) bool {
	got, ok := CodeOf(err)
	return ok && got == code
}
