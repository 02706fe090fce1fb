package sqlite

// Table and statement text for the task store.
const (
	createTasks = `CREATE TABLE IF NOT EXISTS tasks (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    text TEXT NOT NULL,
    done BOOLEAN NOT NULL CHECK (done IN (0, 1))
);`

	insertTask   = "INSERT INTO tasks (text, done) VALUES (?, 0)"
	updateText   = "UPDATE tasks SET text = ? WHERE id = ?"
	updateDone   = "UPDATE tasks SET done = 1 WHERE id = ?"
	deleteTask   = "DELETE FROM tasks WHERE id = ?"
	selectTasks  = "SELECT id, text, done FROM tasks ORDER BY id ASC"
	countTaskTbl = "SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'tasks'"
)
