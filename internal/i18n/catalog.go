package i18n

import "github.com/mesh-intelligence/diindiin/pkg/types"

// Reply texts.
const (
	// Account
	PleaseStart Key = iota
	GenericError
	Busy
	Welcome
	ReferredByFriend
	UseHelp
	WelcomeBack
	Referral
	LanguageCurrent
	LanguageSet
	LanguageNotSupported
	TimezoneCurrent
	TimezoneSet
	TimezoneInvalid
	Help

	// Validation and lookup
	InvalidAmount
	InvalidValue
	InvalidDate
	MissingNameOrType
	MissingIdentifier
	NotFound
	Unsupported
	GenericUsage

	// Expenses and incomes
	ExpenseAdded
	IncomeAdded
	ExpensesHeader
	IncomesHeader
	EntryLine
	TotalLine
	NoExpenses
	NoIncomes
	NoTransactions
	ReportHeader
	CategoryShare
	Insight
	CategoriesHeader
	CategoryCount
	IncomesReport
	ReportCSV
	SpreadsheetGenerated
	SpreadsheetHeader
	SpreadsheetOKRs
	SpreadsheetObjective
	SpreadsheetKeyResult
	SpreadsheetAction
	SpreadsheetFinancial
	SpreadsheetHabits
	SpreadsheetHabitLine
	EntryUpdated
	EntryDetail
	Deleted
	Renamed

	// Investments
	InvestmentAdded
	CurrentValueLine
	NotesLine
	InvestmentsHeader
	InvestmentItem
	InvestmentReturn
	InvestmentDate
	InvestmentTotals
	NoInvestments
	InvestmentUpdated
	ContributionAdded
	ContributionsHeader
	ContributionLine
	NoContributions

	// OKRs
	ObjectiveAdded
	KeyResultAdded
	TargetLine
	ActionAdded
	ProgressUpdated
	KeyResultUpdated
	KeyResultProgress
	KeyResultCurrent
	OKRsHeader
	ObjectiveLine
	KeyResultLine
	TargetSuffix
	CurrentSuffix
	ActionLine
	ProgressSuffix
	NoOKRs
	TargetDateLine

	// Habits
	HabitAdded
	FrequencyDaily
	FrequencyWeekly
	HabitLogged
	HabitValueLine
	CountedAsDay
	HabitNotFound
	HabitsHeader
	HabitItem
	StreakLine
	NoHabits
	HabitReviewHeader
	HabitReviewLine
	HabitStats
	CurrentStreak
	HabitProgressHeader
	HabitProgressItem
	HabitLinked

	// Usage
	UsageAdd
	UsageIncome
	UsageAddInvestment
	UsageUpdateInvestment
	UsageContribute
	UsageAddObjective
	UsageAddKR
	UsageAddAction
	UsageUpdateProgress
	UsageOKR
	UsageAddHabit
	UsageHabit
	UsageHabitStats
	UsageLinkHabit

	keyCount
)

var catalog = [keyCount][types.LanguageCount]string{
	PleaseStart: {
		types.English:    "Please start the bot first with /start",
		types.Portuguese: "Por favor, inicie o bot primeiro com /start",
	},
	GenericError: {
		types.English:    "❌ An error occurred. Please try again.",
		types.Portuguese: "❌ Ocorreu um erro. Por favor, tente novamente.",
	},
	Busy: {
		types.English:    "⏳ I'm still working on your previous messages. Please send this one again in a moment.",
		types.Portuguese: "⏳ Ainda estou processando suas mensagens anteriores. Envie esta de novo em instantes.",
	},
	Welcome: {
		types.English:    "Welcome to Diindiin! 👋\n\nI'll help you manage your finances and goals.\n\nYour referral code: %s\n\n",
		types.Portuguese: "Bem-vindo ao Diindiin! 👋\n\nVou te ajudar a cuidar das suas finanças e metas.\n\nSeu código de indicação: %s\n\n",
	},
	ReferredByFriend: {
		types.English:    "You were referred by a friend! 🎉\n\n",
		types.Portuguese: "Você foi indicado por um amigo! 🎉\n\n",
	},
	UseHelp: {
		types.English:    "Use /help to see available commands.",
		types.Portuguese: "Use /help para ver os comandos disponíveis.",
	},
	WelcomeBack: {
		types.English:    "Welcome back, %s! 👋\n\nYour referral code: %s\n\n",
		types.Portuguese: "Bem-vindo de volta, %s! 👋\n\nSeu código de indicação: %s\n\n",
	},
	Referral: {
		types.English:    "🔗 Your Referral Link:\n\n%s\n\nShare this link with friends to invite them!\nFriends referred: %d",
		types.Portuguese: "🔗 Seu link de indicação:\n\n%s\n\nCompartilhe este link com amigos para convidá-los!\nAmigos indicados: %d",
	},
	LanguageCurrent: {
		types.English:    "Current language: %s\nUse /language en or /language pt to change it.",
		types.Portuguese: "Idioma atual: %s\nUse /language en ou /language pt para mudar.",
	},
	LanguageSet: {
		types.English:    "✅ Language set to %s",
		types.Portuguese: "✅ Idioma definido para %s",
	},
	LanguageNotSupported: {
		types.English:    "Language not supported. Using Portuguese (pt).",
		types.Portuguese: "Idioma não suportado. Usando Português (pt).",
	},
	TimezoneCurrent: {
		types.English:    "🕒 Current time zone: %s\nUse /timezone <Area/City>, e.g. /timezone America/Sao_Paulo",
		types.Portuguese: "🕒 Fuso horário atual: %s\nUse /timezone <Área/Cidade>, ex.: /timezone America/Sao_Paulo",
	},
	TimezoneSet: {
		types.English:    "✅ Time zone set to %s",
		types.Portuguese: "✅ Fuso horário definido para %s",
	},
	TimezoneInvalid: {
		types.English:    "❌ Unknown time zone %q.",
		types.Portuguese: "❌ Fuso horário desconhecido %q.",
	},
	Help: {
		types.English:    "📚 Diindiin Bot Commands:\n\n💰 Expenses and incomes:\n  /add <amount> <description> - Add an expense\n  /income <amount> <description> - Add an income\n  /list expense, /incomes - This month's entries\n  /update expense <id|name> <amount>\n  /edit expense <id|name> <description>\n  /delete expense <id|name>\n\n📊 Reports:\n  /report - Monthly expense report\n  /reportcsv - Monthly report as CSV\n  /categories - Expenses by category\n  /spreadsheet - Yearly spreadsheet as CSV\n  /viewspreadsheet - Spreadsheet preview\n\n📈 Investments:\n  /investments - List all investments\n  /addinvestment <name> <type> <amount> [current] [date]\n  /updateinvestment <id|name> <value>\n  /contribute <id|name> <amount> [date]\n\n🎯 OKRs:\n  /okrs - List objectives, key results and actions\n  /okr <id|title> - View one objective\n  /addobjective <title>\n  /addkr <objective> <title> [target]\n  /addaction <key result> <description>\n  /updateprogress <action> <progress>\n\n🏋️ Habits:\n  /habits, /habitprogress, /habit review\n  /addhabit <name> <frequency>\n  /habit <name> [value] [date]\n  /habitstats <name>\n  /linkhabit <habit> <action>\n\n⚙️ Settings:\n  /language [en|pt], /timezone [zone], /refer\n\nGeneric commands also work: /add /list /view /update /edit /delete /link followed by an entity, e.g. /list okr or /delete kr 3.",
		types.Portuguese: "📚 Comandos do Diindiin:\n\n💰 Despesas e receitas:\n  /add <valor> <descrição> - Adicionar despesa\n  /income <valor> <descrição> - Adicionar receita\n  /listar despesa, /incomes - Lançamentos do mês\n  /atualizar despesa <id|nome> <valor>\n  /editar despesa <id|nome> <descrição>\n  /apagar despesa <id|nome>\n\n📊 Relatórios:\n  /report - Relatório mensal de despesas\n  /reportcsv - Relatório mensal em CSV\n  /categories - Despesas por categoria\n  /spreadsheet - Planilha anual em CSV\n  /viewspreadsheet - Prévia da planilha\n\n📈 Investimentos:\n  /investments - Listar investimentos\n  /addinvestment <nome> <tipo> <valor> [atual] [data]\n  /updateinvestment <id|nome> <valor>\n  /contribute <id|nome> <valor> [data]\n\n🎯 OKRs:\n  /okrs - Listar objetivos, resultados-chave e ações\n  /okr <id|título> - Ver um objetivo\n  /addobjective <título>\n  /addkr <objetivo> <título> [meta]\n  /addaction <resultado-chave> <descrição>\n  /updateprogress <ação> <progresso>\n\n🏋️ Hábitos:\n  /habits, /habitprogress, /habit review\n  /addhabit <nome> <frequência>\n  /habit <nome> [valor] [data]\n  /habitstats <nome>\n  /linkhabit <hábito> <ação>\n\n⚙️ Configurações:\n  /language [en|pt], /timezone [fuso], /refer\n\nComandos genéricos também funcionam: /adicionar /listar /ver /atualizar /editar /apagar /vincular seguidos de uma entidade, ex.: /listar okr ou /apagar rc 3.",
	},
	InvalidAmount: {
		types.English:    "❌ Invalid amount. Please provide a valid number.\nExample: 50.00 or 50,00",
		types.Portuguese: "❌ Valor inválido. Por favor, forneça um número válido.\nExemplo: 50.00 ou 50,00",
	},
	InvalidValue: {
		types.English:    "❌ Invalid value. Please provide a valid number.",
		types.Portuguese: "❌ Valor inválido. Por favor, forneça um número válido.",
	},
	InvalidDate: {
		types.English:    "❌ Invalid date format. Use YYYY-MM-DD",
		types.Portuguese: "❌ Formato de data inválido. Use AAAA-MM-DD",
	},
	MissingNameOrType: {
		types.English:    "❌ Please provide both name and type.",
		types.Portuguese: "❌ Por favor, informe o nome e o tipo.",
	},
	MissingIdentifier: {
		types.English:    "❌ Please say which record: an ID or a name.",
		types.Portuguese: "❌ Informe qual registro: um ID ou um nome.",
	},
	NotFound: {
		types.English:    "❌ %s %q not found. Use %s to see IDs.",
		types.Portuguese: "❌ %s %q não encontrado(a). Use %s para ver os IDs.",
	},
	Unsupported: {
		types.English:    "❌ %s is not available for %s.",
		types.Portuguese: "❌ %s não está disponível para %s.",
	},
	GenericUsage: {
		types.English:    "Usage: %s <entity> ...\nEntities: expense, income, investment, habit, objective, kr, action, contribution.\nUse /help for examples.",
		types.Portuguese: "Uso: %s <entidade> ...\nEntidades: despesa, receita, investimento, hábito, objetivo, rc, ação, contribuição.\nUse /help para exemplos.",
	},
	ExpenseAdded: {
		types.English:    "✅ Expense added!\n\n💰 Amount: %s\n📝 Description: %s\n🏷️ Category: %s",
		types.Portuguese: "✅ Despesa adicionada!\n\n💰 Valor: %s\n📝 Descrição: %s\n🏷️ Categoria: %s",
	},
	IncomeAdded: {
		types.English:    "✅ Income added!\n\n💰 Amount: %s\n📝 Description: %s\n🏷️ Category: %s",
		types.Portuguese: "✅ Receita adicionada!\n\n💰 Valor: %s\n📝 Descrição: %s\n🏷️ Categoria: %s",
	},
	ExpensesHeader: {
		types.English:    "💸 Expenses - %s\n\n",
		types.Portuguese: "💸 Despesas - %s\n\n",
	},
	IncomesHeader: {
		types.English:    "💰 Incomes - %s\n\n",
		types.Portuguese: "💰 Receitas - %s\n\n",
	},
	EntryLine: {
		types.English:    "  #%d %s · %s · %s (%s)\n",
		types.Portuguese: "  #%d %s · %s · %s (%s)\n",
	},
	TotalLine: {
		types.English:    "\nTotal: %s\nTransactions: %d",
		types.Portuguese: "\nTotal: %s\nLançamentos: %d",
	},
	NoExpenses: {
		types.English:    "📊 No expenses recorded for this month.",
		types.Portuguese: "📊 Nenhuma despesa registrada neste mês.",
	},
	NoIncomes: {
		types.English:    "📊 No incomes recorded for this month.",
		types.Portuguese: "📊 Nenhuma receita registrada neste mês.",
	},
	NoTransactions: {
		types.English:    "📊 No transactions recorded for this month.",
		types.Portuguese: "📊 Nenhum lançamento registrado neste mês.",
	},
	ReportHeader: {
		types.English:    "📊 Monthly Report - %s\n\n💰 Total: %s\n📝 Transactions: %d\n\n📈 By Category:\n",
		types.Portuguese: "📊 Relatório Mensal - %s\n\n💰 Total: %s\n📝 Lançamentos: %d\n\n📈 Por Categoria:\n",
	},
	CategoryShare: {
		types.English:    "  • %s: %s (%s%%)\n",
		types.Portuguese: "  • %s: %s (%s%%)\n",
	},
	Insight: {
		types.English:    "\n🤖 AI Insight:\n%s",
		types.Portuguese: "\n🤖 Análise da IA:\n%s",
	},
	CategoriesHeader: {
		types.English:    "🏷️ Expenses by Category (%s):\n\n",
		types.Portuguese: "🏷️ Despesas por Categoria (%s):\n\n",
	},
	CategoryCount: {
		types.English:    "  • %s: %s (%d transactions)\n",
		types.Portuguese: "  • %s: %s (%d lançamentos)\n",
	},
	IncomesReport: {
		types.English:    "💰 Incomes - %s\n\nTotal: %s\nTransactions: %d\n\nBy Category:\n",
		types.Portuguese: "💰 Receitas - %s\n\nTotal: %s\nLançamentos: %d\n\nPor Categoria:\n",
	},
	ReportCSV: {
		types.English:    "✅ Report CSV generated: %s",
		types.Portuguese: "✅ Relatório CSV gerado: %s",
	},
	SpreadsheetGenerated: {
		types.English:    "✅ Spreadsheet generated: %s",
		types.Portuguese: "✅ Planilha gerada: %s",
	},
	SpreadsheetHeader: {
		types.English:    "📊 Spreadsheet Preview - %s\n\n",
		types.Portuguese: "📊 Prévia da Planilha - %s\n\n",
	},
	SpreadsheetOKRs: {
		types.English:    "🎯 OKRs:\n",
		types.Portuguese: "🎯 OKRs:\n",
	},
	SpreadsheetObjective: {
		types.English:    "\n%s\n",
		types.Portuguese: "\n%s\n",
	},
	SpreadsheetKeyResult: {
		types.English:    "  📊 %s\n",
		types.Portuguese: "  📊 %s\n",
	},
	SpreadsheetAction: {
		types.English:    "    📝 %s",
		types.Portuguese: "    📝 %s",
	},
	SpreadsheetFinancial: {
		types.English:    "\n💰 Financial:\n  Income this month: %s\n  Expenses this month: %s\n  Balance: %s\n  Total invested: %s\n  Current value: %s\n",
		types.Portuguese: "\n💰 Finanças:\n  Receitas do mês: %s\n  Despesas do mês: %s\n  Saldo: %s\n  Total investido: %s\n  Valor atual: %s\n",
	},
	SpreadsheetHabits: {
		types.English:    "\n🏋️ Habits (%d):\n",
		types.Portuguese: "\n🏋️ Hábitos (%d):\n",
	},
	SpreadsheetHabitLine: {
		types.English:    "  %s: %d days\n",
		types.Portuguese: "  %s: %d dias\n",
	},
	EntryUpdated: {
		types.English:    "✅ %s updated!\n\n#%d %s - %s",
		types.Portuguese: "✅ %s atualizada!\n\n#%d %s - %s",
	},
	EntryDetail: {
		types.English:    "%s #%d\n💰 Amount: %s\n📝 Description: %s\n🏷️ Category: %s\n📅 Date: %s",
		types.Portuguese: "%s #%d\n💰 Valor: %s\n📝 Descrição: %s\n🏷️ Categoria: %s\n📅 Data: %s",
	},
	Deleted: {
		types.English:    "🗑️ %s deleted: %s (ID %d)",
		types.Portuguese: "🗑️ %s apagado(a): %s (ID %d)",
	},
	Renamed: {
		types.English:    "✅ %s updated: %s",
		types.Portuguese: "✅ %s atualizado(a): %s",
	},
	InvestmentAdded: {
		types.English:    "✅ Investment added!\n\n📈 Name: %s\n🏷️ Type: %s\n💰 Amount: %s\n📅 Purchase Date: %s\n",
		types.Portuguese: "✅ Investimento adicionado!\n\n📈 Nome: %s\n🏷️ Tipo: %s\n💰 Valor: %s\n📅 Data da compra: %s\n",
	},
	CurrentValueLine: {
		types.English:    "📊 Current Value: %s\n",
		types.Portuguese: "📊 Valor atual: %s\n",
	},
	NotesLine: {
		types.English:    "📝 Notes: %s\n",
		types.Portuguese: "📝 Notas: %s\n",
	},
	InvestmentsHeader: {
		types.English:    "📈 Your Investments:\n\n",
		types.Portuguese: "📈 Seus Investimentos:\n\n",
	},
	InvestmentItem: {
		types.English:    "  • %s (%s) [ID %d]\n    Invested: %s\n",
		types.Portuguese: "  • %s (%s) [ID %d]\n    Investido: %s\n",
	},
	InvestmentReturn: {
		types.English:    "    Current: %s\n    Return: %s (%s%%)\n",
		types.Portuguese: "    Atual: %s\n    Retorno: %s (%s%%)\n",
	},
	InvestmentDate: {
		types.English:    "    Date: %s\n\n",
		types.Portuguese: "    Data: %s\n\n",
	},
	InvestmentTotals: {
		types.English:    "💰 Total Invested: %s\n📊 Total Value: %s\n📈 Total Return: %s (%s%%)",
		types.Portuguese: "💰 Total Investido: %s\n📊 Valor Total: %s\n📈 Retorno Total: %s (%s%%)",
	},
	NoInvestments: {
		types.English:    "📈 No investments recorded yet.",
		types.Portuguese: "📈 Nenhum investimento registrado ainda.",
	},
	InvestmentUpdated: {
		types.English:    "✅ Investment updated!\n\n📈 %s\n💰 Current Value: %s\n📊 Return: %s (%s%%)",
		types.Portuguese: "✅ Investimento atualizado!\n\n📈 %s\n💰 Valor atual: %s\n📊 Retorno: %s (%s%%)",
	},
	ContributionAdded: {
		types.English:    "✅ Contribution added!\n\n📈 %s\n💰 Amount: %s\n📅 Date: %s\n💼 Total invested: %s",
		types.Portuguese: "✅ Aporte registrado!\n\n📈 %s\n💰 Valor: %s\n📅 Data: %s\n💼 Total investido: %s",
	},
	ContributionsHeader: {
		types.English:    "💼 Contributions to %s:\n\n",
		types.Portuguese: "💼 Aportes em %s:\n\n",
	},
	ContributionLine: {
		types.English:    "  • #%d %s - %s\n",
		types.Portuguese: "  • #%d %s - %s\n",
	},
	NoContributions: {
		types.English:    "💼 No contributions to %s yet.",
		types.Portuguese: "💼 Nenhum aporte em %s ainda.",
	},
	ObjectiveAdded: {
		types.English:    "✅ Objective added!\n\n🎯 %s\nID: %d",
		types.Portuguese: "✅ Objetivo adicionado!\n\n🎯 %s\nID: %d",
	},
	KeyResultAdded: {
		types.English:    "✅ Key Result added!\n\n📊 %s\n%sID: %d",
		types.Portuguese: "✅ Resultado-chave adicionado!\n\n📊 %s\n%sID: %d",
	},
	TargetLine: {
		types.English:    "Target: %s\n",
		types.Portuguese: "Meta: %s\n",
	},
	ActionAdded: {
		types.English:    "✅ Action added!\n\n📝 %s\nID: %d",
		types.Portuguese: "✅ Ação adicionada!\n\n📝 %s\nID: %d",
	},
	ProgressUpdated: {
		types.English:    "✅ Progress updated!\n\n📝 %s\n📊 Progress: %s",
		types.Portuguese: "✅ Progresso atualizado!\n\n📝 %s\n📊 Progresso: %s",
	},
	KeyResultUpdated: {
		types.English:    "✅ Key Result updated!\n\n📊 %s\n%s",
		types.Portuguese: "✅ Resultado-chave atualizado!\n\n📊 %s\n%s",
	},
	KeyResultProgress: {
		types.English:    "Current: %s / Target: %s (%s%%)",
		types.Portuguese: "Atual: %s / Meta: %s (%s%%)",
	},
	KeyResultCurrent: {
		types.English:    "Current: %s",
		types.Portuguese: "Atual: %s",
	},
	OKRsHeader: {
		types.English:    "📊 Your OKRs:\n\n",
		types.Portuguese: "📊 Seus OKRs:\n\n",
	},
	ObjectiveLine: {
		types.English:    "🎯 %s (ID: %d)\n",
		types.Portuguese: "🎯 %s (ID: %d)\n",
	},
	KeyResultLine: {
		types.English:    "  📊 %s (ID: %d)",
		types.Portuguese: "  📊 %s (ID: %d)",
	},
	TargetSuffix: {
		types.English:    " - Target: %s",
		types.Portuguese: " - Meta: %s",
	},
	CurrentSuffix: {
		types.English:    " / Current: %s",
		types.Portuguese: " / Atual: %s",
	},
	ActionLine: {
		types.English:    "    📝 %s (ID: %d)",
		types.Portuguese: "    📝 %s (ID: %d)",
	},
	ProgressSuffix: {
		types.English:    " (%s)",
		types.Portuguese: " (%s)",
	},
	NoOKRs: {
		types.English:    "📊 No OKRs found. Create one with /addobjective",
		types.Portuguese: "📊 Nenhum OKR encontrado. Crie um com /addobjective",
	},
	TargetDateLine: {
		types.English:    "📅 Target Date: %s\n",
		types.Portuguese: "📅 Data alvo: %s\n",
	},
	HabitAdded: {
		types.English:    "✅ Habit added!\n\n🏋️ %s\n📅 Frequency: %s",
		types.Portuguese: "✅ Hábito adicionado!\n\n🏋️ %s\n📅 Frequência: %s",
	},
	FrequencyDaily: {
		types.English:    "Daily",
		types.Portuguese: "Diário",
	},
	FrequencyWeekly: {
		types.English:    "%sx per week",
		types.Portuguese: "%sx por semana",
	},
	HabitLogged: {
		types.English:    "✅ Habit logged!\n\n🏋️ %s\n📅 Date: %s\n",
		types.Portuguese: "✅ Hábito registrado!\n\n🏋️ %s\n📅 Data: %s\n",
	},
	HabitValueLine: {
		types.English:    "📊 Value: %s%s\n",
		types.Portuguese: "📊 Valor: %s%s\n",
	},
	CountedAsDay: {
		types.English:    "\nCounted as 1 day!",
		types.Portuguese: "\nContado como 1 dia!",
	},
	HabitNotFound: {
		types.English:    "❌ Habit %q not found. Create it first with /addhabit",
		types.Portuguese: "❌ Hábito %q não encontrado. Crie primeiro com /addhabit",
	},
	HabitsHeader: {
		types.English:    "📊 Your Habits:\n\n",
		types.Portuguese: "📊 Seus Hábitos:\n\n",
	},
	HabitItem: {
		types.English:    "🏋️ %s (ID: %d)\n   📅 %d days this year (%s%%)\n",
		types.Portuguese: "🏋️ %s (ID: %d)\n   📅 %d dias este ano (%s%%)\n",
	},
	StreakLine: {
		types.English:    "   🔥 Streak: %d days\n",
		types.Portuguese: "   🔥 Sequência: %d dias\n",
	},
	NoHabits: {
		types.English:    "📊 No habits found. Create one with /addhabit",
		types.Portuguese: "📊 Nenhum hábito encontrado. Crie um com /addhabit",
	},
	HabitReviewHeader: {
		types.English:    "📊 Habit Review %d:\n\n",
		types.Portuguese: "📊 Revisão de Hábitos %d:\n\n",
	},
	HabitReviewLine: {
		types.English:    "%s %s: %d days\n",
		types.Portuguese: "%s %s: %d dias\n",
	},
	HabitStats: {
		types.English:    "📊 %s - Statistics\n\n📅 Year: %d\n✅ Completed: %d days\n📈 Total Days: %d\n📊 Percentage: %s%%\n",
		types.Portuguese: "📊 %s - Estatísticas\n\n📅 Ano: %d\n✅ Concluído: %d dias\n📈 Total de dias: %d\n📊 Porcentagem: %s%%\n",
	},
	CurrentStreak: {
		types.English:    "🔥 Current Streak: %d days\n",
		types.Portuguese: "🔥 Sequência atual: %d dias\n",
	},
	HabitProgressHeader: {
		types.English:    "📊 Habit Progress %d:\n\n",
		types.Portuguese: "📊 Progresso dos Hábitos %d:\n\n",
	},
	HabitProgressItem: {
		types.English:    "🏋️ %s\n   %d/%d days (%s%%)\n",
		types.Portuguese: "🏋️ %s\n   %d/%d dias (%s%%)\n",
	},
	HabitLinked: {
		types.English:    "✅ Habit linked to action!\n\n🏋️ %s\n📝 %s (ID: %d)",
		types.Portuguese: "✅ Hábito vinculado à ação!\n\n🏋️ %s\n📝 %s (ID: %d)",
	},
	UsageAdd: {
		types.English:    "Usage: /add <amount> <description>\nExample: /add 50.00 Coffee at Starbucks\nExample: /add 50,00 Coffee (supports comma)",
		types.Portuguese: "Uso: /add <valor> <descrição>\nExemplo: /add 50.00 Café na padaria\nExemplo: /add 50,00 Café (aceita vírgula)",
	},
	UsageIncome: {
		types.English:    "Usage: /income <amount> <description>\nExample: /income 5000.00 Salary",
		types.Portuguese: "Uso: /income <valor> <descrição>\nExemplo: /income 5000.00 Salário",
	},
	UsageAddInvestment: {
		types.English:    "Usage: /addinvestment <name> <type> <amount> [current] [date] [notes]\nExamples:\n  /addinvestment \"reserva de emergencia\" CDB 84203.72\n  /addinvestment \"reserva de emergencia\" CDB 84203,72\n  /addinvestment Bitcoin Crypto 1000.00 2024-01-15\nNote: Date is optional, defaults to today. Use quotes for names with spaces.",
		types.Portuguese: "Uso: /addinvestment <nome> <tipo> <valor> [atual] [data] [notas]\nExemplos:\n  /addinvestment \"reserva de emergencia\" CDB 84203.72\n  /addinvestment \"reserva de emergencia\" CDB 84203,72\n  /addinvestment Bitcoin Crypto 1000.00 2024-01-15\nObs.: a data é opcional, padrão hoje. Use aspas para nomes com espaços.",
	},
	UsageUpdateInvestment: {
		types.English:    "Usage: /updateinvestment <id|name> <current_value>\nExample: /updateinvestment 1 1200.00",
		types.Portuguese: "Uso: /updateinvestment <id|nome> <valor_atual>\nExemplo: /updateinvestment 1 1200.00",
	},
	UsageContribute: {
		types.English:    "Usage: /contribute <id|name> <amount> [date]\nExample: /contribute \"reserva de emergencia\" 500 2025-03-01",
		types.Portuguese: "Uso: /contribute <id|nome> <valor> [data]\nExemplo: /contribute \"reserva de emergencia\" 500 2025-03-01",
	},
	UsageAddObjective: {
		types.English:    "Usage: /addobjective <title>\nExample: /addobjective \"Run a marathon\"",
		types.Portuguese: "Uso: /addobjective <título>\nExemplo: /addobjective \"Correr uma maratona\"",
	},
	UsageAddKR: {
		types.English:    "Usage: /addkr <objective> <title> [target]\nExample: /addkr 1 \"Weekly runs\" 42",
		types.Portuguese: "Uso: /addkr <objetivo> <título> [meta]\nExemplo: /addkr 1 \"Corridas semanais\" 42",
	},
	UsageAddAction: {
		types.English:    "Usage: /addaction <key result> <description>\nExample: /addaction 1 \"Train 4x per week\"",
		types.Portuguese: "Uso: /addaction <resultado-chave> <descrição>\nExemplo: /addaction 1 \"Treinar musculação 4x por semana\"",
	},
	UsageUpdateProgress: {
		types.English:    "Usage: /updateprogress <action> <progress>\nExample: /updateprogress 1 \"2/52\"",
		types.Portuguese: "Uso: /updateprogress <ação> <progresso>\nExemplo: /updateprogress 1 \"2/52\"",
	},
	UsageOKR: {
		types.English:    "Usage: /okr <id|title>\nExample: /okr 1",
		types.Portuguese: "Uso: /okr <id|título>\nExemplo: /okr 1",
	},
	UsageAddHabit: {
		types.English:    "Usage: /addhabit <name> <frequency>\nExample: /addhabit \"treino\" \"4x per week\"",
		types.Portuguese: "Uso: /addhabit <nome> <frequência>\nExemplo: /addhabit \"treino\" \"4x por semana\"",
	},
	UsageHabit: {
		types.English:    "Usage: /habit <name> [value] [date]\nExample: /habit treino\nExample: /habit agua 2L\nExample: /habit treino 2024-01-15",
		types.Portuguese: "Uso: /habit <nome> [valor] [data]\nExemplo: /habit treino\nExemplo: /habit agua 2L\nExemplo: /habit treino 2024-01-15",
	},
	UsageHabitStats: {
		types.English:    "Usage: /habitstats <name>\nExample: /habitstats treino",
		types.Portuguese: "Uso: /habitstats <nome>\nExemplo: /habitstats treino",
	},
	UsageLinkHabit: {
		types.English:    "Usage: /linkhabit <habit> <action>\nExample: /linkhabit treino 1",
		types.Portuguese: "Uso: /linkhabit <hábito> <ação>\nExemplo: /linkhabit treino 1",
	},
}
