package database

import (
	"fmt"
	"log"
)

// starterGames is the catalog seeded into an empty database
var starterGames = []struct {
	Title       string
	Description string
	Icon        string
	Color       string
	Difficulty  string
	Category    string
}{
	{"Suma Rápida", "Resuelve sumas contra el reloj", "➕", "#4CAF50", "Fácil", "Aritmética"},
	{"Resta Veloz", "Restas cada vez más difíciles", "➖", "#8BC34A", "Fácil", "Aritmética"},
	{"Multiplicación Maestra", "Domina las tablas de multiplicar", "✖️", "#FF9800", "Medio", "Aritmética"},
	{"División Exacta", "Divide sin dejar resto", "➗", "#FF5722", "Medio", "Aritmética"},
	{"Ecuaciones Locas", "Encuentra el valor de x", "🧮", "#9C27B0", "Difícil", "Álgebra"},
	{"Balanza Algebraica", "Equilibra ambos lados de la ecuación", "⚖️", "#673AB7", "Medio", "Álgebra"},
	{"Figuras Geométricas", "Identifica figuras y sus propiedades", "📐", "#2196F3", "Fácil", "Geometría"},
	{"Área y Perímetro", "Calcula áreas y perímetros", "📏", "#03A9F4", "Medio", "Geometría"},
}

// SeedGames inserts the starter game catalog if the games table is empty
func (db *DB) SeedGames() error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM games").Scan(&count); err != nil {
		return fmt.Errorf("failed to check games count: %w", err)
	}

	if count > 0 {
		log.Printf("Game catalog already populated with %d games", count)
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO games (title, description, icon, color, difficulty, players, category, is_active)
		VALUES (?, ?, ?, ?, ?, 0, ?, ?)
	`

	for _, g := range starterGames {
		if _, err := tx.Exec(insertQuery, g.Title, g.Description, g.Icon, g.Color, g.Difficulty, g.Category, true); err != nil {
			return fmt.Errorf("failed to seed game %q: %w", g.Title, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit game seed: %w", err)
	}

	log.Printf("Seeded %d starter games", len(starterGames))
	return nil
}
