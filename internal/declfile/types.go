package declfile

// File is a set of descriptions.
type File struct {
	Descriptions []Description `yaml:"descriptions" hcl:"description,block" validate:"required,dive"`
}

// Description describes one target class.
type Description struct {
	Name    string   `yaml:"name" hcl:"name,label" validate:"required"`
	Target  string   `yaml:"target" hcl:"target" validate:"required"`
	Extends []string `yaml:"extends,omitempty" hcl:"extends,optional" validate:"dive,required"`
	Decls   []Decl   `yaml:"declarations,omitempty" hcl:"declaration,block" validate:"dive"`
}

// Decl is one declaration of a description.
type Decl struct {
	Name    string   `yaml:"name" hcl:"name,label" validate:"required"`
	Kind    string   `yaml:"kind" hcl:"kind" validate:"required,oneof=method getter setter constructor"`
	Member  string   `yaml:"member,omitempty" hcl:"member,optional"`
	Params  []string `yaml:"params,omitempty" hcl:"params,optional" validate:"dive,required"`
	Returns string   `yaml:"returns,omitempty" hcl:"returns,optional"`
	Static  bool     `yaml:"static,omitempty" hcl:"static,optional"`
}
