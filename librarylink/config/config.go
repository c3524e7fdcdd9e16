package config

import (
	"fmt"
	"log"
	"os"
	"slices"
	"sync"
	"time"

	"github.com/Astemirdum/library-link/librarylink/internal/catalog"
	"github.com/Astemirdum/library-link/librarylink/internal/model"
	"github.com/Astemirdum/library-link/pkg/kafka"
	"github.com/Astemirdum/library-link/pkg/logger"
	"github.com/Astemirdum/library-link/pkg/postgres"
	"github.com/Astemirdum/library-link/pkg/sqlite"
	jsoniter "github.com/json-iterator/go"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
}

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite"
	DriverMemory   = "memory"
)

type Storage struct {
	Driver string `yaml:"driver" envconfig:"STORAGE_DRIVER"`
}

// Professor describes who adds course reserves. ProfilePath, when set,
// names a YAML file holding the whole profile.
type Professor struct {
	Name        string `yaml:"name" envconfig:"PROFESSOR_NAME"`
	Email       string `yaml:"email" envconfig:"PROFESSOR_EMAIL"`
	Department  string `yaml:"department" envconfig:"PROFESSOR_DEPARTMENT"`
	ProfilePath string `yaml:"profilePath" envconfig:"PROFESSOR_PROFILE"`
}

type Config struct {
	Server      HTTPServer  `yaml:"server"`
	Storage     Storage     `yaml:"storage"`
	Database    postgres.DB `yaml:"db"`
	Sqlite      sqlite.DB   `yaml:"sqlite"`
	Kafka       kafka.Config
	Catalog     catalog.Config
	Professor   Professor
	DefaultUser string     `yaml:"defaultUser" envconfig:"DEFAULT_USER" default:"student"`
	Log         logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := jsoniter.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}

var defaultCourses = []model.Course{
	{Code: "CS101", Name: "Introduction to Computer Science", Semester: "Fall 2025", Section: "001"},
	{Code: "CS201", Name: "Data Structures and Algorithms", Semester: "Fall 2025", Section: "002"},
	{Code: "CS301", Name: "Software Engineering", Semester: "Fall 2025", Section: "001"},
}

// Profile returns the professor persona's profile. Unset fields fall back
// to the built-in demo profile.
func (p Professor) Profile() (model.ProfessorProfile, error) {
	profile := model.ProfessorProfile{
		Name:       "Dr. Sarah Johnson",
		Email:      "sarah.johnson@nyu.edu",
		Department: "Computer Science",
		Courses:    slices.Clone(defaultCourses),
	}
	if p.ProfilePath != "" {
		data, err := os.ReadFile(p.ProfilePath)
		if err != nil {
			return model.ProfessorProfile{}, err
		}
		if err := yaml.Unmarshal(data, &profile); err != nil {
			return model.ProfessorProfile{}, errors.Wrap(err, p.ProfilePath)
		}
	}
	if p.Name != "" {
		profile.Name = p.Name
	}
	if p.Email != "" {
		profile.Email = p.Email
	}
	if p.Department != "" {
		profile.Department = p.Department
	}
	return profile, nil
}
