package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/AweFilko/PIB-SQL-injection/config"
)

type seedUser struct {
	username string
	password string
	email    string
	role     string
	fullName string
	bio      string
	city     string
	phone    string
}

// Credentials are stored as plain text on purpose. The rig demonstrates
// injection against the login query, and hashing would hide the
// extracted values from the student.
var seedUsers = []seedUser{
	{"admin", "admin123", "admin@lab.local", "admin", "Site Administrator", "Keeps the lights on.", "Prague", "+420111222333"},
	{"alice", "alicepass", "alice@lab.local", "user", "Alice Novak", "Coffee first, then SQL.", "Brno", "+420444555666"},
	{"bob", "bobpass", "bob@lab.local", "user", "Bob Svoboda", "Collector of obscure keyboards.", "Ostrava", "+420777888999"},
	{"carol", "carolpass", "carol@lab.local", "user", "Carol Dvorak", "Runs marathons, slowly.", "Plzen", "+420123123123"},
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	for _, u := range seedUsers {
		var id int64
		err := db.QueryRow(`
			INSERT INTO users (username, password_hash, email, role)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (username) DO UPDATE SET email = EXCLUDED.email
			RETURNING id
		`, u.username, u.password, u.email, u.role).Scan(&id)
		if err != nil {
			log.Fatalf("failed to seed user %s: %v", u.username, err)
		}

		if _, err := db.Exec(`
			INSERT INTO profiles (user_id, full_name, bio, city, phone)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (user_id) DO UPDATE SET full_name = EXCLUDED.full_name, bio = EXCLUDED.bio
		`, id, u.fullName, u.bio, u.city, u.phone); err != nil {
			log.Fatalf("failed to seed profile for %s: %v", u.username, err)
		}

		if _, err := db.Exec(`
			INSERT INTO comments (user_id, content)
			SELECT $1, c FROM unnest(ARRAY[
				'First post from ' || $2::text,
				'Still figuring out this dashboard.',
				'Does anyone read these?'
			]) AS c
			WHERE NOT EXISTS (SELECT 1 FROM comments WHERE user_id = $1)
		`, id, u.username); err != nil {
			log.Fatalf("failed to seed comments for %s: %v", u.username, err)
		}

		if _, err := db.Exec(`
			INSERT INTO orders (user_id, product_id, quantity, total)
			SELECT $1, p, q, t FROM (VALUES (101, 1, 19.90), (202, 3, 8.50)) AS o(p, q, t)
			WHERE NOT EXISTS (SELECT 1 FROM orders WHERE user_id = $1)
		`, id); err != nil {
			log.Fatalf("failed to seed orders for %s: %v", u.username, err)
		}

		fmt.Printf("seeded user: id=%d username=%s password=%s\n", id, u.username, u.password)
	}
	fmt.Println("seed complete")
}
