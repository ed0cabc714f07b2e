package store

const (
	userColumns = `user_id, login, name, password_hash, password_changed_at, must_change_password, created_at`

	createUser = `INSERT INTO users (login, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING ` + userColumns + `;`

	findUserByLogin = `SELECT ` + userColumns + `
    FROM users
    WHERE login = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE user_id = $1;`

	updatePassword = `UPDATE users
    SET password_hash = $2, password_changed_at = now(), must_change_password = FALSE
    WHERE user_id = $1;`

	rehashPassword = `UPDATE users
    SET password_hash = $2
    WHERE user_id = $1 AND password_hash = $3;`
)
