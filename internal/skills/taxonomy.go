// Package skills provides skill name normalization and categorization against
// a canonical skill taxonomy.
package skills

import "github.com/VisageDvachevsky/AI-Devtools-Hack/internal/types"

// skillTaxonomy maps each canonical skill id to its known raw variants,
// including common abbreviations and Russian transliterations seen in
// HH.ru postings. Reference data, loaded once and never mutated.
var skillTaxonomy = map[types.SkillID][]string{
	"python":        {"python", "py", "python3", "питон", "пайтон"},
	"javascript":    {"javascript", "js", "es6", "es2015", "ecmascript", "джаваскрипт"},
	"typescript":    {"typescript", "ts", "тайпскрипт"},
	"java":          {"java", "джава"},
	"go":            {"go", "golang", "го"},
	"rust":          {"rust", "раст"},
	"c++":           {"c++", "cpp", "cplusplus", "си++"},
	"c#":            {"c#", "csharp", "си шарп"},
	"ruby":          {"ruby", "руби"},
	"php":           {"php", "пхп"},
	"kotlin":        {"kotlin", "котлин"},
	"swift":         {"swift", "свифт"},
	"react":         {"react", "reactjs", "react.js", "реакт"},
	"vue":           {"vue", "vuejs", "vue.js", "вью"},
	"angular":       {"angular", "angularjs", "ангуляр"},
	"django":        {"django", "джанго"},
	"flask":         {"flask", "фласк"},
	"fastapi":       {"fastapi", "fast-api", "фастапи"},
	"spring":        {"spring", "spring boot", "springboot"},
	"node":          {"node", "nodejs", "node.js", "нода"},
	"express":       {"express", "expressjs", "express.js"},
	"postgresql":    {"postgresql", "postgres", "pg", "постгрес"},
	"mysql":         {"mysql", "май sql"},
	"mongodb":       {"mongodb", "mongo", "монго"},
	"redis":         {"redis", "редис"},
	"elasticsearch": {"elasticsearch", "elastic", "эластик"},
	"docker":        {"docker", "докер"},
	"kubernetes":    {"kubernetes", "k8s", "кубер", "кубернетес"},
	"aws":           {"aws", "amazon web services", "амазон"},
	"gcp":           {"gcp", "google cloud", "гугл клауд"},
	"azure":         {"azure", "азур", "азуре"},
	"terraform":     {"terraform", "терраформ"},
	"ansible":       {"ansible", "ансибл"},
	"jenkins":       {"jenkins", "дженкинс"},
	"gitlab":        {"gitlab", "gitlab ci", "гитлаб"},
	"github":        {"github", "github actions", "гитхаб"},
	"pytorch":       {"pytorch", "torch", "пайторч"},
	"tensorflow":    {"tensorflow", "tf", "тензорфлоу"},
	"scikit-learn":  {"scikit-learn", "sklearn", "сайкит"},
	"pandas":        {"pandas", "пандас"},
	"numpy":         {"numpy", "нампи"},
	"pytest":        {"pytest", "py.test"},
	"jest":          {"jest", "джест"},
	"selenium":      {"selenium", "селениум"},
	"git":           {"git", "гит"},
	"linux":         {"linux", "линукс", "unix"},
	"rest":          {"rest", "restful", "rest api", "рест"},
	"graphql":       {"graphql", "graph ql", "графкуэл"},
	"microservices": {"microservices", "микросервисы"},
	"agile":         {"agile", "scrum", "аджайл"},
	"rabbitmq":      {"rabbitmq", "rabbit mq", "рэббит"},
	"kafka":         {"kafka", "apache kafka", "кафка"},
	"grpc":          {"grpc", "grpc api"},
	"nginx":         {"nginx", "нджинкс"},
	"sql":           {"sql", "скул"},
}

// synonymToCanonical is the reverse lookup built from skillTaxonomy.
var synonymToCanonical = buildSynonymIndex()

func buildSynonymIndex() map[string]types.SkillID {
	index := make(map[string]types.SkillID)
	for canonical, synonyms := range skillTaxonomy {
		for _, synonym := range synonyms {
			index[synonym] = canonical
		}
	}
	return index
}

// Category membership sets. A canonical skill belongs to exactly one category;
// anything outside these sets is CategoryOther.
var (
	backendSkills = map[types.SkillID]bool{
		"python": true, "java": true, "go": true, "rust": true, "c++": true,
		"c#": true, "ruby": true, "php": true, "kotlin": true,
		"django": true, "flask": true, "fastapi": true, "spring": true,
		"node": true, "express": true, "grpc": true,
	}
	frontendSkills = map[types.SkillID]bool{
		"javascript": true, "typescript": true,
		"react": true, "vue": true, "angular": true,
	}
	databaseSkills = map[types.SkillID]bool{
		"postgresql": true, "mysql": true, "mongodb": true,
		"redis": true, "elasticsearch": true, "sql": true,
	}
	mlSkills = map[types.SkillID]bool{
		"pytorch": true, "tensorflow": true, "scikit-learn": true,
		"pandas": true, "numpy": true,
	}
	devopsSkills = map[types.SkillID]bool{
		"docker": true, "kubernetes": true, "aws": true, "gcp": true,
		"azure": true, "terraform": true, "ansible": true, "jenkins": true,
		"gitlab": true, "github": true, "nginx": true,
	}
)

// Categorize returns the category of a canonical skill id.
func Categorize(id types.SkillID) types.Category {
	switch {
	case backendSkills[id]:
		return types.CategoryBackend
	case frontendSkills[id]:
		return types.CategoryFrontend
	case mlSkills[id]:
		return types.CategoryML
	case databaseSkills[id]:
		return types.CategoryDatabase
	case devopsSkills[id]:
		return types.CategoryDevops
	default:
		return types.CategoryOther
	}
}

// GroupByCategory buckets canonical skills by their category, preserving
// input order within each bucket.
func GroupByCategory(ids []types.SkillID) map[types.Category][]types.SkillID {
	grouped := make(map[types.Category][]types.SkillID)
	for _, id := range ids {
		category := Categorize(id)
		grouped[category] = append(grouped[category], id)
	}
	return grouped
}
