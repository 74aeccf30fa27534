package repository

func LocalPragma(lr *LocalProgressRepository, name string) (string, error) {
	var value string
	err := lr.db.QueryRow("PRAGMA " + name).Scan(&value)
	return value, err
}
