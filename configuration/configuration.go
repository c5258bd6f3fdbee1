package configuration

type Configuration struct {
	HttpAddr          string `usage:"HTTP address"`
	DataFile          string `usage:"villagers data file, one pipe separated record per line"`
	ApiKey            string `usage:"API key, authentication is enabled when key and secret are set"`
	ApiSecret         string `usage:"API secret"`
	EnableCompression bool   `usage:"gzip responses when the client accepts it"`
	Debug             bool   `usage:"verbose logging"`
	Version           bool   `usage:"show version and exit"`
	ShowBanner        bool   `usage:"show big banner"`
	ShowConfig        bool   `usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		HttpAddr:          "127.0.0.1:8080",
		DataFile:          "villagers.csv",
		EnableCompression: true,
		ShowBanner:        true,
	}
}
