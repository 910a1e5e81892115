package store

const (
	createUser = `INSERT INTO users (username, password_hash, email)
    VALUES ($1, $2, $3)
    RETURNING user_id, username, password_hash, email, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, email, created_at
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT user_id, username, password_hash, email, created_at
    FROM users
    WHERE user_id = $1;`

	saveQuestion = `INSERT INTO questions (user_id, question)
    VALUES ($1, $2)
    RETURNING question_id, user_id, question, asked;`
)
