package config

import (
	"encoding/json"
	"flag"
	"os"
	"strings"
)

type Config struct {
	Port     string `json:"port"`
	EnumsDir string `json:"enumsDir"`
	GinMode  string `json:"ginMode"` // debug | release | test

	// Дефолты проекта на старте сессии
	ProjectName    string `json:"projectName"`
	DrivingSide    string `json:"drivingSide"` // right | left
	NetFile        string `json:"netFile"`
	RouteFile      string `json:"routeFile"`
	AdditionalFile string `json:"additionalFile"`
	ConfigFile     string `json:"configFile"`
}

func def() Config {
	return Config{
		Port:     "8080",
		EnumsDir: "reference/enums",
		GinMode:  "debug",

		ProjectName:    "sumo_project",
		DrivingSide:    "right",
		NetFile:        "network.net.xml",
		RouteFile:      "routes.rou.xml",
		AdditionalFile: "additional.add.xml",
		ConfigFile:     "simulation.sumocfg",
	}
}

func loadJSON(path string) (Config, error) {
	c := def()
	b, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, err
	}
	return c, nil
}

func getenv(k, fallback string) string {
	if v, ok := os.LookupEnv(k); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return fallback
}

// JSON (если файл существует) поверх дефолтов, потом ENV
func fromJSONAndEnv(jsonPath string) Config {
	cfg := def()
	if st, err := os.Stat(jsonPath); err == nil && !st.IsDir() {
		if c2, err := loadJSON(jsonPath); err == nil {
			cfg = c2
		}
	}

	cfg.Port = getenv("SUMOBUILD_PORT", cfg.Port)
	cfg.EnumsDir = getenv("SUMOBUILD_ENUMS_DIR", cfg.EnumsDir)
	cfg.GinMode = getenv("SUMOBUILD_GIN_MODE", cfg.GinMode)
	cfg.ProjectName = getenv("SUMOBUILD_PROJECT", cfg.ProjectName)
	cfg.DrivingSide = getenv("SUMOBUILD_DRIVING_SIDE", cfg.DrivingSide)
	cfg.NetFile = getenv("SUMOBUILD_NET_FILE", cfg.NetFile)
	cfg.RouteFile = getenv("SUMOBUILD_ROUTE_FILE", cfg.RouteFile)
	cfg.AdditionalFile = getenv("SUMOBUILD_ADDITIONAL_FILE", cfg.AdditionalFile)
	cfg.ConfigFile = getenv("SUMOBUILD_CONFIG_FILE", cfg.ConfigFile)
	return cfg
}

// LoadWithPath читает JSON по указанному пути, потом применяет ENV и флаги.
// Флаги объявляются и разбираются ровно один раз: если через -config передали
// другой путь, перечитывается только JSON/ENV-слой, а поверх накладываются
// лишь явно заданные флаги.
func LoadWithPath(jsonPath string) Config {
	cfg := fromJSONAndEnv(jsonPath)

	configPath := flag.String("config", jsonPath, "Path to config JSON")
	port := flag.String("port", cfg.Port, "HTTP port")
	enums := flag.String("enums", cfg.EnumsDir, "Path to enums directory")
	mode := flag.String("gin-mode", cfg.GinMode, "Gin mode (debug/release/test)")
	project := flag.String("project", cfg.ProjectName, "Default project name")
	side := flag.String("driving-side", cfg.DrivingSide, "Driving side (right/left)")

	flag.Parse()

	if *configPath != jsonPath {
		cfg = fromJSONAndEnv(*configPath)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Port = strings.TrimSpace(*port)
		case "enums":
			cfg.EnumsDir = strings.TrimSpace(*enums)
		case "gin-mode":
			cfg.GinMode = strings.TrimSpace(*mode)
		case "project":
			cfg.ProjectName = strings.TrimSpace(*project)
		case "driving-side":
			cfg.DrivingSide = strings.TrimSpace(*side)
		}
	})

	return cfg
}
