package dto

// Respuesta es el sobre uniforme de toda respuesta del API:
// {data, success, message} y, en errores de validación, una lista
// de errores por campo.
type Respuesta struct {
	Data    any               `json:"data"`
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Errors  []ErrorValidacion `json:"errors,omitempty"`
}

// ErrorValidacion error de validación asociado a un campo del formulario.
type ErrorValidacion struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Exito construye el sobre de éxito con el mensaje por defecto.
func Exito(data any) Respuesta {
	return Respuesta{Data: data, Success: true, Message: "Operación exitosa"}
}

// ExitoMsg construye el sobre de éxito con un mensaje propio.
func ExitoMsg(data any, message string) Respuesta {
	return Respuesta{Data: data, Success: true, Message: message}
}

// Error construye el sobre de error con un mensaje general.
func Error(message string) Respuesta {
	return Respuesta{Data: nil, Success: false, Message: message}
}

// ErrorDeValidacion construye el sobre de error con errores por campo.
func ErrorDeValidacion(errores []ErrorValidacion) Respuesta {
	return Respuesta{Data: nil, Success: false, Message: "Error de validación", Errors: errores}
}
