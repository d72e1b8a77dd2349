package config

// Hub is the YAML wire shape for one topology.Hub. Category and Zone are
// parsed case-insensitively; an empty Category means INTERMEDIATE and an
// empty Zone means NORMAL, so minimal documents don't need to spell out
// every field.
type Hub struct {
	Name      string `yaml:"name"`
	Category  string `yaml:"category,omitempty"`
	Zone      string `yaml:"zone,omitempty"`
	X         int    `yaml:"x,omitempty"`
	Y         int    `yaml:"y,omitempty"`
	MaxDrones int    `yaml:"max_drones"`
}

// Connection is the YAML wire shape for one topology.Connection.
type Connection struct {
	A        string `yaml:"a"`
	B        string `yaml:"b"`
	Capacity int    `yaml:"capacity"`
}

// Document is the top-level YAML shape config.Load decodes.
type Document struct {
	NbDrones    int          `yaml:"nb_drones"`
	Hubs        []Hub        `yaml:"hubs"`
	Connections []Connection `yaml:"connections"`
}
