package command

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

// Verb is the operation a command asks for.
type Verb uint8

// Verbs in dictionary order. When a word belongs to several verbs the first
// one in this order wins.
const (
	VerbUnknown Verb = iota
	VerbAdd
	VerbList
	VerbUpdate
	VerbShow
	VerbView
	VerbDelete
	VerbEdit
	VerbLink

	// VerbCount sizes tables indexed by Verb.
	VerbCount
)

var verbNames = [VerbCount]string{
	VerbUnknown: "unknown",
	VerbAdd:     "add",
	VerbList:    "list",
	VerbUpdate:  "update",
	VerbShow:    "show",
	VerbView:    "view",
	VerbDelete:  "delete",
	VerbEdit:    "edit",
	VerbLink:    "link",
}

func (v Verb) String() string {
	if v >= VerbCount {
		return "unknown"
	}
	return verbNames[v]
}

type keywords [types.LanguageCount][]string

// entityKeywords maps each entity type to its surface words per language.
// Entries are tried in EntityType order.
var entityKeywords = [types.EntityTypeCount]keywords{
	types.EntityExpense: {
		types.English:    {"expense", "expenses", "spending", "spend", "cost", "costs", "gasto", "gastos"},
		types.Portuguese: {"despesa", "despesas", "gasto", "gastos", "gastar"},
	},
	types.EntityIncome: {
		types.English:    {"income", "incomes", "salary", "salaries", "earnings", "earning"},
		types.Portuguese: {"receita", "receitas", "salário", "salários", "ganho", "ganhos"},
	},
	types.EntityInvestment: {
		types.English:    {"investment", "investments", "invest", "investing"},
		types.Portuguese: {"investimento", "investimentos", "investir"},
	},
	types.EntityHabit: {
		types.English:    {"habit", "habits"},
		types.Portuguese: {"hábito", "hábitos", "habito", "habitos"},
	},
	types.EntityObjective: {
		types.English:    {"objective", "objectives", "goal", "goals", "okr", "okrs"},
		types.Portuguese: {"objetivo", "objetivos", "meta", "metas", "okr", "okrs"},
	},
	// Words are matched against one token, so the entries with a space
	// only match a quoted token such as "key result". Unquoted, the first
	// word is classified alone. The short rc also matches inside longer
	// Portuguese words such as mercado.
	types.EntityKeyResult: {
		types.English:    {"key result", "key results", "kr", "krs"},
		types.Portuguese: {"resultado-chave", "resultado chave", "resultados-chave", "resultados chave", "rc", "rcs"},
	},
	types.EntityAction: {
		types.English:    {"action", "actions", "task", "tasks"},
		types.Portuguese: {"ação", "acao", "ações", "acoes", "tarefa", "tarefas"},
	},
	types.EntityContribution: {
		types.English:    {"contribution", "contributions"},
		types.Portuguese: {"contribuição", "contribuicao", "contribuições", "contribuicoes"},
	},
}

// verbKeywords maps each verb to its surface words per language. Words
// shared with list (show, view, ver) resolve to list; show and view keep
// the words only they own.
var verbKeywords = [VerbCount]keywords{
	VerbAdd: {
		types.English:    {"add", "create", "new", "insert"},
		types.Portuguese: {"adicionar", "adiciona", "criar", "cria", "novo", "nova", "inserir"},
	},
	// "ver todos" only matches a quoted token.
	VerbList: {
		types.English:    {"list", "show", "view", "see", "all"},
		types.Portuguese: {"listar", "lista", "mostrar", "mostra", "ver", "ver todos", "todos", "todas"},
	},
	VerbUpdate: {
		types.English:    {"update", "change", "modify", "set"},
		types.Portuguese: {"atualizar", "atualiza", "alterar", "altera", "modificar"},
	},
	VerbShow: {
		types.English:    {"display"},
		types.Portuguese: {"exibir", "exibe"},
	},
	VerbView: {
		types.English:    {"details", "open"},
		types.Portuguese: {"visualizar", "detalhar", "abrir"},
	},
	VerbDelete: {
		types.English:    {"delete", "remove", "del", "rm"},
		types.Portuguese: {"deletar", "apagar", "excluir", "remover"},
	},
	VerbEdit: {
		types.English:    {"edit", "rename"},
		types.Portuguese: {"editar", "edita", "renomear"},
	},
	VerbLink: {
		types.English:    {"link", "attach"},
		types.Portuguese: {"vincular", "ligar"},
	},
}

// fold returns the case-folded form of s. A Caser is stateful, so each call
// builds its own.
func fold(s string) string {
	return cases.Fold().String(s)
}

// EqualFold reports whether a and b are equal under Unicode case folding.
func EqualFold(a, b string) bool {
	return fold(a) == fold(b)
}

// ContainsFold reports whether s contains substr under Unicode case folding.
func ContainsFold(s, substr string) bool {
	return strings.Contains(fold(s), fold(substr))
}

// DetectEntity returns the first entity type with a keyword contained in
// text. It is the loose matcher used on the first working token.
func DetectEntity(text string, lang types.Language) types.EntityType {
	t := fold(strings.TrimSpace(text))
	if t == "" {
		return types.EntityNone
	}
	for e := types.EntityNone + 1; e < types.EntityTypeCount; e++ {
		for _, kw := range entityKeywords[e][lang] {
			if strings.Contains(t, fold(kw)) {
				return e
			}
		}
	}
	return types.EntityNone
}

// MatchEntity returns the entity type with a keyword equal to token. It is
// the strict matcher used by dedicated per-entity commands.
func MatchEntity(token string, lang types.Language) types.EntityType {
	t := fold(strings.TrimSpace(token))
	for e := types.EntityNone + 1; e < types.EntityTypeCount; e++ {
		for _, kw := range entityKeywords[e][lang] {
			if t == fold(kw) {
				return e
			}
		}
	}
	return types.EntityNone
}

// DetectVerb returns the first verb with a keyword that equals word or is
// followed by a space at its start.
func DetectVerb(word string, lang types.Language) Verb {
	w := fold(strings.TrimSpace(word))
	if w == "" {
		return VerbUnknown
	}
	for v := VerbUnknown + 1; v < VerbCount; v++ {
		for _, kw := range verbKeywords[v][lang] {
			k := fold(kw)
			if w == k || strings.HasPrefix(w, k+" ") {
				return v
			}
		}
	}
	return VerbUnknown
}

// EntityKeywords returns the surface words of entity in lang.
func EntityKeywords(entity types.EntityType, lang types.Language) []string {
	if entity >= types.EntityTypeCount || lang >= types.LanguageCount {
		return nil
	}
	return append([]string(nil), entityKeywords[entity][lang]...)
}

// VerbKeywords returns the surface words of verb in lang.
func VerbKeywords(verb Verb, lang types.Language) []string {
	if verb >= VerbCount || lang >= types.LanguageCount {
		return nil
	}
	return append([]string(nil), verbKeywords[verb][lang]...)
}
