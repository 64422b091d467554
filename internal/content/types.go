// Package content holds the portfolio content model, the built-in defaults,
// and the YAML loader used to override them.
package content

// Content is everything the pages render.
type Content struct {
	Owner          Owner           `yaml:"owner" validate:"required"`
	Heroes         Heroes          `yaml:"heroes" validate:"required"`
	Projects       []Project       `yaml:"projects" validate:"dive"`
	Education      []Education     `yaml:"education" validate:"dive"`
	Experience     []Experience    `yaml:"experience" validate:"dive"`
	Certifications []Certification `yaml:"certifications" validate:"dive"`
	Notes          []Note          `yaml:"notes" validate:"dive"`
	Neurons        []Neuron        `yaml:"neurons" validate:"dive"`
	Social         []SocialLink    `yaml:"social" validate:"min=1,dive"`
}

// Owner describes the person the portfolio belongs to.
type Owner struct {
	Name          string `yaml:"name" validate:"required"`
	Initials      string `yaml:"initials" validate:"required,max=4"`
	Bio           string `yaml:"bio" validate:"required"`
	Resume        string `yaml:"resume" validate:"omitempty,link"`
	LinkedIn      string `yaml:"linkedin" validate:"omitempty,url"`
	CopyrightYear int    `yaml:"copyright_year" validate:"min=1970"`
}

// Hero is the heading block at the top of a page.
type Hero struct {
	Title    string `yaml:"title" validate:"required"`
	Subtitle string `yaml:"subtitle"`
}

// Heroes holds the hero copy per page.
type Heroes struct {
	Work    Hero `yaml:"work"`
	About   Hero `yaml:"about"`
	Notes   Hero `yaml:"notes"`
	Neurons Hero `yaml:"neurons"`
	Contact Hero `yaml:"contact"`
}

// Project is a card on the Work page.
type Project struct {
	Title       string   `yaml:"title" validate:"required"`
	Description string   `yaml:"description" validate:"required"`
	Image       string   `yaml:"image,omitempty" validate:"omitempty,url"`
	Demo        string   `yaml:"demo,omitempty" validate:"omitempty,url"`
	Source      string   `yaml:"source,omitempty" validate:"omitempty,url"`
	Tags        []string `yaml:"tags" validate:"dive,required"`
}

// Education is one degree on the About page.
type Education struct {
	Degree      string `yaml:"degree" validate:"required"`
	Institution string `yaml:"institution" validate:"required"`
	Period      string `yaml:"period" validate:"required"`
}

// Experience is one role on the About page.
type Experience struct {
	Role       string   `yaml:"role" validate:"required"`
	Company    string   `yaml:"company" validate:"required"`
	Period     string   `yaml:"period" validate:"required"`
	Highlights []string `yaml:"highlights" validate:"dive,required"`
}

// Certification is a card on the About page.
type Certification struct {
	Title        string `yaml:"title" validate:"required"`
	Organization string `yaml:"organization" validate:"required"`
	Date         string `yaml:"date" validate:"required"`
	Image        string `yaml:"image,omitempty" validate:"omitempty,url"`
	Verification string `yaml:"verification" validate:"omitempty,url"`
}

// Note is an article card on the Notes page.
type Note struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Link        string `yaml:"link" validate:"required,url"`
}

// Neuron is a quote card on the My Neurons page.
type Neuron struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
}

// SocialLink is an entry of the footer popover.
type SocialLink struct {
	Name string `yaml:"name" validate:"required"`
	URL  string `yaml:"url" validate:"required,url"`
}
