package domain

type OptionGroup struct {
	Name    string   `json:"name"`
	Choices []string `json:"choices"`
}

type MenuItem struct {
	ID            string        `json:"id"`
	CategoryID    string        `json:"category_id,omitempty"`
	NameEN        string        `json:"name_en"`
	NameAR        string        `json:"name_ar"`
	Price         float64       `json:"price"`
	DescriptionEN string        `json:"description_en,omitempty"`
	DescriptionAR string        `json:"description_ar,omitempty"`
	Image         string        `json:"image,omitempty"`
	Unit          string        `json:"unit,omitempty"`
	WeightStep    float64       `json:"weight_step,omitempty"`
	MinQuantity   float64       `json:"min_quantity,omitempty"`
	Options       []OptionGroup `json:"options,omitempty"`
	Presets       []string      `json:"presets,omitempty"`
}

type Category struct {
	ID     string     `json:"id"`
	NameEN string     `json:"name_en"`
	NameAR string     `json:"name_ar"`
	Image  string     `json:"image,omitempty"`
	Items  []MenuItem `json:"items"`
}

type Menu struct {
	Categories []Category `json:"categories"`
}
