// Package manifest собирает пару манифестов аддона: resource pack и
// зависящий от него behaviour pack.
package manifest

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// FormatVersion версия формата manifest.json
const FormatVersion = 2

// Version тройка версии [major, minor, patch]
type Version [3]int

// String возвращает версию в виде "1.0.0"
func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v[0], v[1], v[2])
}

var (
	// DefaultVersion версия паков и модулей
	DefaultVersion = Version{1, 0, 0}
	// MinEngineVersion минимальная версия движка
	MinEngineVersion = Version{1, 16, 0}
)

// ErrResourceNotBuilt behaviour-манифест запрошен до resource-манифеста
var ErrResourceNotBuilt = errors.New("resource manifest must be built before behaviour manifest")

// Module типы модулей
const (
	ModuleTypeData      = "data"
	ModuleTypeResources = "resources"
)

type Header struct {
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	UUID             uuid.UUID `json:"uuid"`
	Version          Version   `json:"version"`
	MinEngineVersion Version   `json:"min_engine_version"`
}

type Module struct {
	Description string    `json:"description"`
	Type        string    `json:"type"`
	UUID        uuid.UUID `json:"uuid"`
	Version     Version   `json:"version"`
}

type Dependency struct {
	UUID    uuid.UUID `json:"uuid"`
	Version Version   `json:"version"`
}

// Manifest документ manifest.json
type Manifest struct {
	FormatVersion int          `json:"format_version"`
	Header        Header       `json:"header"`
	Modules       []Module     `json:"modules"`
	Dependencies  []Dependency `json:"dependencies,omitempty"`
}

// DependsOn проверяет, что манифест ссылается ровно на UUID и версию res
func (m Manifest) DependsOn(res Manifest) bool {
	for _, dep := range m.Dependencies {
		if dep.UUID == res.Header.UUID && dep.Version == res.Header.Version {
			return true
		}
	}
	return false
}

// Builder строит манифесты. NewUUID по умолчанию uuid.New.
type Builder struct {
	NewUUID          func() uuid.UUID
	Version          Version
	MinEngineVersion Version
}

// NewBuilder создаёт построитель со случайными UUID
func NewBuilder() *Builder {
	return &Builder{
		NewUUID:          uuid.New,
		Version:          DefaultVersion,
		MinEngineVersion: MinEngineVersion,
	}
}

// NewStableBuilder выдаёт детерминированную последовательность UUID,
// производную от seed. Повторный запуск с тем же seed даёт те же
// идентификаторы паков, и игра считает их обновлением, а не новым аддоном.
func NewStableBuilder(seed string) *Builder {
	b := NewBuilder()
	counter := 0
	base := uuid.NewSHA1(uuid.NameSpaceURL, []byte("addon-builder:"+seed))
	b.NewUUID = func() uuid.UUID {
		counter++
		return uuid.NewSHA1(base, []byte(fmt.Sprintf("%d", counter)))
	}
	return b
}

func (b *Builder) newUUID() uuid.UUID {
	if b.NewUUID == nil {
		return uuid.New()
	}
	return b.NewUUID()
}

func (b *Builder) build(name, description, moduleType string) Manifest {
	return Manifest{
		FormatVersion: FormatVersion,
		Header: Header{
			Name:             name,
			Description:      description,
			UUID:             b.newUUID(),
			Version:          b.Version,
			MinEngineVersion: b.MinEngineVersion,
		},
		Modules: []Module{{
			Description: description,
			Type:        moduleType,
			UUID:        b.newUUID(),
			Version:     b.Version,
		}},
	}
}

// BuildResource строит манифест resource pack со свежими UUID заголовка и модуля
func (b *Builder) BuildResource(name, description string) Manifest {
	return b.build(name+" Resources", description, ModuleTypeResources)
}

// BuildBehaviour строит манифест behaviour pack. Единственная зависимость
// копирует UUID и версию заголовка уже построенного res.
func (b *Builder) BuildBehaviour(name, description string, res Manifest) (Manifest, error) {
	if res.Header.UUID == uuid.Nil {
		return Manifest{}, ErrResourceNotBuilt
	}
	m := b.build(name+" Behaviour", description, ModuleTypeData)
	m.Dependencies = []Dependency{{
		UUID:    res.Header.UUID,
		Version: res.Header.Version,
	}}
	return m, nil
}
