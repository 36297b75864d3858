//go:build ignore

// Скрипт для генерации иконок трея.
// Запуск: go run scripts/generate_icons.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
)

// letterB - буква "B" в сетке 5x7.
var letterB = []string{
	"####.",
	"#...#",
	"#...#",
	"####.",
	"#...#",
	"#...#",
	"####.",
}

func main() {
	dir := "embedded"
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		log.Fatalf("Не удалось создать директорию %s: %v", dir, err)
	}

	icons := []struct {
		name  string
		color color.RGBA
	}{
		{"icon_idle.png", color.RGBA{128, 128, 128, 255}},    // Серый
		{"icon_working.png", color.RGBA{230, 160, 50, 255}}, // Оранжевый
	}

	for _, icon := range icons {
		path := filepath.Join(dir, icon.name)
		if err := generateIcon(path, icon.color); err != nil {
			log.Fatalf("Ошибка генерации %s: %v", icon.name, err)
		}
		log.Printf("Создан: %s", path)
	}
}

func generateIcon(path string, c color.RGBA) error {
	const (
		size   = 64
		margin = 4
		radius = 12
		cell   = 7
	)
	img := image.NewRGBA(image.Rect(0, 0, size, size))

	// Фон - квадрат со скруглёнными углами
	for y := margin; y < size-margin; y++ {
		for x := margin; x < size-margin; x++ {
			if insideRounded(x, y, margin, size-margin, radius) {
				img.Set(x, y, c)
			}
		}
	}

	// Буква
	white := color.RGBA{255, 255, 255, 255}
	offX := (size - len(letterB[0])*cell) / 2
	offY := (size - len(letterB)*cell) / 2
	for row, line := range letterB {
		for col, ch := range line {
			if ch != '#' {
				continue
			}
			for y := 0; y < cell; y++ {
				for x := 0; x < cell; x++ {
					img.Set(offX+col*cell+x, offY+row*cell+y, white)
				}
			}
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return png.Encode(f, img)
}

func insideRounded(x, y, lo, hi, r int) bool {
	cx, cy := x, y
	switch {
	case x < lo+r:
		cx = lo + r
	case x >= hi-r:
		cx = hi - r - 1
	}
	switch {
	case y < lo+r:
		cy = lo + r
	case y >= hi-r:
		cy = hi - r - 1
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}
