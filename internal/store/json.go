package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ReadJSONOrDefault читает JSON-документ по пути.
//
// Пустой, отсутствующий или повреждённый документ заменяется на def,
// при этом fellBack == true. Ошибки чтения, отличные от ErrNotFound,
// возвращаются как есть: подмена на значение по умолчанию допускается
// только при явном сигнале "документа нет или он не разбирается".
func ReadJSONOrDefault[T any](s Store, p string, def T) (T, bool, error) {
	text, err := s.ReadText(p)
	if errors.Is(err, ErrNotFound) {
		return def, true, nil
	}
	if err != nil {
		return def, false, fmt.Errorf("ошибка чтения %s: %w", p, err)
	}

	doc, ok := tryParseJSON[T](text)
	if !ok {
		return def, true, nil
	}
	return doc, false, nil
}

func tryParseJSON[T any](text string) (T, bool) {
	var doc T
	if strings.TrimSpace(text) == "" {
		return doc, false
	}
	if err := json.Unmarshal([]byte(text), &doc); err != nil {
		return doc, false
	}
	return doc, true
}

// MarshalDocument сериализует документ с отступом в 4 пробела
func MarshalDocument(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// WriteJSON сериализует документ и перезаписывает файл
func WriteJSON(s Store, p string, v interface{}) error {
	text, err := MarshalDocument(v)
	if err != nil {
		return fmt.Errorf("ошибка сериализации %s: %w", p, err)
	}
	if err := s.WriteText(p, text); err != nil {
		return fmt.Errorf("ошибка записи %s: %w", p, err)
	}
	return nil
}

// AppendLine дописывает строку в конец текстового файла.
// Ведущие пробельные символы существующего содержимого отбрасываются.
func AppendLine(s Store, p string, line string) error {
	if err := s.Ensure(p, false); err != nil {
		return err
	}
	text, err := s.ReadText(p)
	if err != nil {
		return err
	}
	text = strings.TrimLeft(text, " \t\r\n")
	if text == "" {
		return s.WriteText(p, line)
	}
	return s.WriteText(p, text+"\n"+line)
}

// UpsertLine заменяет строку "key=..." на "key=value" или дописывает её
// в конец, если ключа ещё нет. Используется для .lang файлов.
func UpsertLine(s Store, p string, key, value string) error {
	if err := s.Ensure(p, false); err != nil {
		return err
	}
	text, err := s.ReadText(p)
	if err != nil {
		return err
	}
	text = strings.TrimLeft(text, " \t\r\n")

	line := key + "=" + value
	if text == "" {
		return s.WriteText(p, line)
	}

	lines := strings.Split(text, "\n")
	for i, existing := range lines {
		if strings.HasPrefix(existing, key+"=") {
			lines[i] = line
			return s.WriteText(p, strings.Join(lines, "\n"))
		}
	}
	return s.WriteText(p, text+"\n"+line)
}
