package sqlite

// Schema DDL, applied in order on every Attach. Amounts are decimal strings
// and dates are YYYY-MM-DD text so that they sort and compare as text.
const (
	createUsers = `CREATE TABLE IF NOT EXISTS users (
    user_id INTEGER PRIMARY KEY AUTOINCREMENT,
    chat_id INTEGER NOT NULL UNIQUE,
    username TEXT NOT NULL DEFAULT '',
    first_name TEXT NOT NULL DEFAULT '',
    last_name TEXT NOT NULL DEFAULT '',
    referral_code TEXT NOT NULL UNIQUE,
    referred_by INTEGER REFERENCES users(user_id) ON DELETE SET NULL,
    language TEXT NOT NULL DEFAULT 'pt',
    timezone TEXT NOT NULL DEFAULT 'America/Sao_Paulo',
    created_at TEXT NOT NULL
);`

	createExpenses = `CREATE TABLE IF NOT EXISTS expenses (
    expense_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    amount TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT 'Other',
    date TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createIncomes = `CREATE TABLE IF NOT EXISTS incomes (
    income_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    amount TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category TEXT NOT NULL DEFAULT 'Other',
    date TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createInvestments = `CREATE TABLE IF NOT EXISTS investments (
    investment_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    type TEXT NOT NULL,
    amount TEXT NOT NULL,
    current_value TEXT,
    purchase_date TEXT NOT NULL,
    notes TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);`

	createContributions = `CREATE TABLE IF NOT EXISTS contributions (
    contribution_id INTEGER PRIMARY KEY AUTOINCREMENT,
    investment_id INTEGER NOT NULL REFERENCES investments(investment_id) ON DELETE CASCADE,
    amount TEXT NOT NULL,
    date TEXT NOT NULL,
    created_at TEXT NOT NULL
);`

	createObjectives = `CREATE TABLE IF NOT EXISTS objectives (
    objective_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    target_date TEXT,
    created_at TEXT NOT NULL
);`

	createKeyResults = `CREATE TABLE IF NOT EXISTS key_results (
    key_result_id INTEGER PRIMARY KEY AUTOINCREMENT,
    objective_id INTEGER NOT NULL REFERENCES objectives(objective_id) ON DELETE CASCADE,
    title TEXT NOT NULL,
    target_value TEXT,
    current_value TEXT,
    created_at TEXT NOT NULL
);`

	createActions = `CREATE TABLE IF NOT EXISTS actions (
    action_id INTEGER PRIMARY KEY AUTOINCREMENT,
    key_result_id INTEGER NOT NULL REFERENCES key_results(key_result_id) ON DELETE CASCADE,
    description TEXT NOT NULL,
    progress TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);`

	createHabits = `CREATE TABLE IF NOT EXISTS habits (
    habit_id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(user_id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    frequency_type TEXT NOT NULL DEFAULT 'daily',
    frequency_value INTEGER NOT NULL DEFAULT 0,
    unit TEXT NOT NULL DEFAULT '',
    linked_action_id INTEGER REFERENCES actions(action_id) ON DELETE SET NULL,
    created_at TEXT NOT NULL
);`

	createHabitLogs = `CREATE TABLE IF NOT EXISTS habit_logs (
    log_id INTEGER PRIMARY KEY AUTOINCREMENT,
    habit_id INTEGER NOT NULL REFERENCES habits(habit_id) ON DELETE CASCADE,
    date TEXT NOT NULL,
    value TEXT,
    notes TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL,
    UNIQUE (habit_id, date)
);`
)

// Index DDL for common queries.
const (
	idxExpensesUserDate    = `CREATE INDEX IF NOT EXISTS idx_expenses_user_date ON expenses(user_id, date);`
	idxIncomesUserDate     = `CREATE INDEX IF NOT EXISTS idx_incomes_user_date ON incomes(user_id, date);`
	idxInvestmentsUser     = `CREATE INDEX IF NOT EXISTS idx_investments_user ON investments(user_id);`
	idxContributionsInvest = `CREATE INDEX IF NOT EXISTS idx_contributions_investment ON contributions(investment_id);`
	idxObjectivesUser      = `CREATE INDEX IF NOT EXISTS idx_objectives_user ON objectives(user_id);`
	idxKeyResultsObjective = `CREATE INDEX IF NOT EXISTS idx_key_results_objective ON key_results(objective_id);`
	idxActionsKeyResult    = `CREATE INDEX IF NOT EXISTS idx_actions_key_result ON actions(key_result_id);`
	idxHabitsUser          = `CREATE INDEX IF NOT EXISTS idx_habits_user ON habits(user_id);`
	idxHabitLogsHabitDate  = `CREATE INDEX IF NOT EXISTS idx_habit_logs_habit_date ON habit_logs(habit_id, date);`
)

// schema lists every statement in dependency order.
var schema = []string{
	createUsers,
	createExpenses,
	createIncomes,
	createInvestments,
	createContributions,
	createObjectives,
	createKeyResults,
	createActions,
	createHabits,
	createHabitLogs,
	idxExpensesUserDate,
	idxIncomesUserDate,
	idxInvestmentsUser,
	idxContributionsInvest,
	idxObjectivesUser,
	idxKeyResultsObjective,
	idxActionsKeyResult,
	idxHabitsUser,
	idxHabitLogsHabitDate,
}
