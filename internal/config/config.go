// 包 config：生成器的显式配置值；内置默认表 + 环境变量覆盖，由入口构造后传入生成流程
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var ErrCountRange = errors.New("config: per-district count range is invalid")

// State：目标邦的名称、边界文件名与两位代码
type State struct {
	Name string
	File string
	Code string
}

// 文档注释：生成器配置
// 背景：原先散落为进程级常量，收敛为一个值便于测试替换夹具目录与名单。
// 约束：States 的顺序即输出顺序；MinPerDistrict <= MaxPerDistrict。
type Config struct {
	InputDir   string
	OutputPath string
	States     []State

	FirstNames []string
	LastNames  []string

	MinPerDistrict int
	MaxPerDistrict int
	MaxAttempts    int

	// Seed 为 nil 时使用时间种子
	Seed *uint64

	GeomBackend     string
	BoundarySource  string
	CacheTTLSeconds int
	MetricsTextfile string
}

var defaultStates = []State{
	{Name: "Telangana", File: "Telangana.json", Code: "TG"},
	{Name: "Madhya Pradesh", File: "Madhya Pradesh.json", Code: "MP"},
	{Name: "Jharkhand", File: "Jharkhand.json", Code: "JH"},
	{Name: "Odisha", File: "Odisha.json", Code: "OD"},
	{Name: "Tripura", File: "Tripura.json", Code: "TR"},
}

var defaultFirstNames = []string{
	"Raju", "Lakshmi", "Soma", "Anji", "Sunitha", "Mallesh", "Gita", "Ram",
	"Rekha", "Raghu", "Asha", "Biru", "Rita", "Sunil", "Lali", "Narayan",
	"Pinki", "Kalia", "Sita", "Babulal", "Devi", "Gouranga", "Kumari",
	"Kishore", "Reang", "Meena", "Chotu", "Kamalamma", "Mallaiah", "Rathnam",
	"Pothuraju", "Saroja", "Kiran", "Savitri", "Ramesh", "Shyam", "Anitha",
	"Veera", "Devanna", "Shanti", "Mohan", "Ramkali", "Devraj", "Durga",
	"Laxman", "Sarla", "Bhagwan", "Kamini", "Rakesh", "Gopal", "Sanjay",
	"Santosh", "Pushpa", "Amar", "Anjali", "Subhash", "Chandan", "Rakhi",
	"Guddu", "Soni", "Harish", "Ajay", "Meera", "Roshan", "Nita", "Lukra",
	"Prakash", "Radha", "Manoj", "Sarita", "Reena", "Jayant", "Linga",
	"Kamli", "Raja", "Santi", "Dinesh", "Rupali", "Bikash", "Sabita",
	"Akash", "Rinku", "Sonali", "Arjun", "Radhika", "Subal", "Manisha",
	"Jiten", "Pratap", "Sumita", "Krishna", "Lopa", "Debu",
}

var defaultLastNames = []string{
	"Nayak", "Bai", "Naik", "Gond", "Singh", "Oraon", "Munda", "Debbarma",
	"Ekka", "Koya", "Lambada", "Bhil", "Baiga", "Korku", "Sahariya", "Meena",
	"Kondh", "Santhal", "Pradhan", "Majhi", "Kharia", "Ho", "Birhor",
}

// Default：内置默认配置（返回切片副本，调用方可自由修改）
func Default() Config {
	return Config{
		InputDir:        filepath.Join("data", "new_districts"),
		OutputPath:      filepath.Join("data", "output", "fra_pattas_all_states.csv"),
		States:          append([]State(nil), defaultStates...),
		FirstNames:      append([]string(nil), defaultFirstNames...),
		LastNames:       append([]string(nil), defaultLastNames...),
		MinPerDistrict:  10,
		MaxPerDistrict:  20,
		MaxAttempts:     100,
		GeomBackend:     "orb",
		BoundarySource:  "file",
		CacheTTLSeconds: 3600,
	}
}

// 文档注释：从环境变量覆盖默认配置
// 背景：与其它工具一致，配置只来自 .env / 环境变量，不引入命令行参数。
// 约束：数值解析失败时保留默认值；STATES 中未知的邦名报错。
func FromEnv() (Config, error) {
	c := Default()
	if v := os.Getenv("GEOJSON_DIR"); v != "" {
		c.InputDir = v
	}
	if v := os.Getenv("OUTPUT_PATH"); v != "" {
		c.OutputPath = v
	}
	if v := os.Getenv("STATES"); v != "" {
		sel, err := selectStates(c.States, strings.Split(v, ","))
		if err != nil {
			return c, err
		}
		c.States = sel
	}
	c.MinPerDistrict = envInt("PATTAS_MIN", c.MinPerDistrict)
	c.MaxPerDistrict = envInt("PATTAS_MAX", c.MaxPerDistrict)
	c.MaxAttempts = envInt("SAMPLER_MAX_ATTEMPTS", c.MaxAttempts)
	if v := os.Getenv("RANDOM_SEED"); v != "" {
		if n, e := strconv.ParseUint(v, 10, 64); e == nil {
			c.Seed = &n
		}
	}
	if v := strings.ToLower(os.Getenv("GEOM_BACKEND")); v != "" {
		c.GeomBackend = v
	}
	if v := strings.ToLower(os.Getenv("BOUNDARY_SOURCE")); v != "" {
		c.BoundarySource = v
	}
	c.CacheTTLSeconds = envInt("BOUNDARY_CACHE_TTL_S", c.CacheTTLSeconds)
	c.MetricsTextfile = os.Getenv("METRICS_TEXTFILE")
	return c, c.Validate()
}

// Validate：检查数量区间与名单
func (c Config) Validate() error {
	if c.MinPerDistrict < 1 || c.MinPerDistrict > c.MaxPerDistrict {
		return fmt.Errorf("%w: [%d, %d]", ErrCountRange, c.MinPerDistrict, c.MaxPerDistrict)
	}
	if len(c.FirstNames) == 0 || len(c.LastNames) == 0 {
		return errors.New("config: name lists must not be empty")
	}
	if c.MaxAttempts < 1 {
		return errors.New("config: sampler attempts must be positive")
	}
	return nil
}

// StateNames：按配置顺序返回邦名
func (c Config) StateNames() []string {
	out := make([]string, 0, len(c.States))
	for _, s := range c.States {
		out = append(out, s.Name)
	}
	return out
}

func selectStates(all []State, names []string) ([]State, error) {
	var out []State
	for _, raw := range names {
		n := strings.TrimSpace(raw)
		if n == "" {
			continue
		}
		found := false
		for _, s := range all {
			if strings.EqualFold(s.Name, n) || strings.EqualFold(s.Code, n) {
				out = append(out, s)
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("config: unknown state %q", n)
		}
	}
	return out, nil
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, e := strconv.Atoi(v); e == nil {
			return n
		}
	}
	return def
}
