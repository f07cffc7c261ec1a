package postgres

type Option func(*Config)

// WithNetwork attaches the container to a docker network under alias, so
// other containers on it reach postgres at alias:5432.
func WithNetwork(network, alias string) Option {
	return func(c *Config) {
		c.NetworkName = network
		c.NetworkAlias = alias
	}
}

func WithContainerName(containerName string) Option {
	return func(c *Config) {
		c.ContainerName = containerName
	}
}

func WithImageName(image string) Option {
	return func(c *Config) {
		c.ImageName = image
	}
}

func WithDatabase(database string) Option {
	return func(c *Config) {
		c.Database = database
	}
}

func WithAuth(username, password string) Option {
	return func(c *Config) {
		c.Username = username
		c.Password = password
	}
}

func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}
