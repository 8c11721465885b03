package reference

// EnumDirectory описывает один справочник enum-значений SUMO
// (типы узлов, модели смены полосы, действия при коллизии и т.д.)
type EnumDirectory struct {
	Name  string     `yaml:"name"`
	Items []EnumItem `yaml:"items"`
}

type EnumItem struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
	// Дополнительные поля на будущее (порядок в выпадающих списках и т.п.)
	Order int `yaml:"order,omitempty"`
}

// Codes возвращает список кодов справочника в исходном порядке
func (d EnumDirectory) Codes() []string {
	out := make([]string, 0, len(d.Items))
	for _, it := range d.Items {
		out = append(out, it.Code)
	}
	return out
}

// HasCode проверяет, что значение входит в справочник
func (d EnumDirectory) HasCode(code string) bool {
	for _, it := range d.Items {
		if it.Code == code {
			return true
		}
	}
	return false
}
