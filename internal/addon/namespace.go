package addon

import "strings"

// TechnicalName приводит отображаемое имя аддона к техническому виду:
// нижний регистр, каждый пробел заменён на "_" ("My Addon" -> "my_addon").
func TechnicalName(displayName string) string {
	return strings.ReplaceAll(strings.ToLower(displayName), " ", "_")
}

// ResolveNamespace возвращает явно заданное пространство имён или
// выводит его из отображаемого имени.
func ResolveNamespace(displayName, explicit string) string {
	if explicit != "" {
		return explicit
	}
	return TechnicalName(displayName)
}

// Identifier собирает полный идентификатор "<namespace>:<id>"
func Identifier(namespace, id string) string {
	return namespace + ":" + id
}
