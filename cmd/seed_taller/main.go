// seed_taller genera el script SQL con los datos iniciales del taller: la
// cuenta admin por defecto y, opcionalmente, la cartera de clientes exportada
// del sistema anterior (CSV en ISO-8859-1: nombre;apellido;rut;email;telefono).
//
// Uso: go run ./cmd/seed_taller [ruta/clientes.csv]
// Escribe: internal/infrastructure/postgres/migrations/002_seed.sql
package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/tu-usuario/taller-api/pkg/password"
)

func main() {
	var clientes [][]string
	if len(os.Args) > 1 {
		rows, err := readClientesCSV(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
			os.Exit(1)
		}
		clientes = rows
	}

	adminHash, err := password.Hash("adminpassword")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Hashear contraseña admin: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "002_seed.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Datos iniciales del taller\n")
	out.WriteString("-- Generado por cmd/seed_taller\n\n")

	// 1. Cuenta admin por defecto. requiere_reseteo fuerza el cambio de
	// contraseña en el primer login.
	out.WriteString("-- 1. Cuenta admin\n")
	fmt.Fprintf(out, "INSERT INTO usuarios (nombre, apellido, email, password, rol, estado, requiere_reseteo)\n")
	fmt.Fprintf(out, "VALUES ('Admin', 'Taller', 'admin@example.com', '%s', 'admin', 'activo', TRUE)\n", escapeSQL(adminHash))
	out.WriteString("ON CONFLICT (email) DO NOTHING;\n\n")

	// 2. Clientes migrados del sistema anterior
	if len(clientes) > 0 {
		out.WriteString("-- 2. Clientes migrados\n")
		for _, row := range clientes {
			fmt.Fprintf(out, "INSERT INTO clientes (nombre, apellido, rut, email, telefono)\n")
			fmt.Fprintf(out, "VALUES ('%s', '%s', '%s', '%s', '%s');\n",
				escapeSQL(row[0]), escapeSQL(row[1]), escapeSQL(row[2]),
				escapeSQL(row[3]), escapeSQL(row[4]))
		}
	}

	fmt.Printf("Generado %s: 1 admin, %d clientes\n", outPath, len(clientes))
}

// readClientesCSV lee el export del sistema anterior. Viene en ISO-8859-1 y
// separado por punto y coma; se transcodifica a UTF-8 al vuelo.
func readClientesCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(transform.NewReader(f, charmap.ISO8859_1.NewDecoder()))
	r.Comma = ';'
	r.FieldsPerRecord = 5

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	var rows [][]string
	for _, rec := range records {
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}
		if rec[0] == "" && rec[1] == "" {
			continue
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
