// Package input предоставляет ввод текста и сочетания клавиш в активное поле.
package input

// Typer вводит текст в активное поле ввода.
type Typer interface {
	// Type вводит текст в текущее активное поле.
	// Набор поверх выделения заменяет его.
	Type(text string) error
}

// Keyboard дополняет Typer системными сочетаниями копирования и вставки
// (Ctrl+C/Ctrl+V, на macOS Cmd+C/Cmd+V).
type Keyboard interface {
	Typer
	// Copy копирует выделение активного приложения в буфер обмена.
	Copy() error
	// Paste вставляет содержимое буфера обмена поверх выделения.
	Paste() error
}

// New создаёт платформо-специфичную клавиатуру.
func New() (Keyboard, error) {
	return newKeyboard()
}
