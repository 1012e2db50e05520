package load

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	_ "github.com/jackc/pgx/stdlib"

	"github.com/invertedv/timeuse/survey"
)

// The extracts can also live in a database; the loaders here run fixed
// projections against mirrors of the three files and reuse the same record
// builders as the CSV path.

func ConnectClickHouse(host, user, password string) (*sql.DB, error) {
	db := clickhouse.OpenDB(
		&clickhouse.Options{
			Addr: []string{host + ":9000"},
			Auth: clickhouse.Auth{
				Database: "default",
				Username: user,
				Password: password,
			},
			DialTimeout: 300 * time.Second,
			Compression: &clickhouse.Compression{
				Method: clickhouse.CompressionLZ4,
				Level:  0,
			},
		})

	return db, db.Ping()
}

func ConnectPostgres(host, user, password, dbName string) (*sql.DB, error) {
	connectionStr := fmt.Sprintf("postgres://%s:%s@%s:5432/%s", user, password, host, dbName)

	var (
		db *sql.DB
		e  error
	)
	if db, e = sql.Open("pgx", connectionStr); e != nil {
		return nil, e
	}

	return db, db.Ping()
}

// EconomicsDB loads the respondent file from tableName.
func EconomicsDB(db *sql.DB, tableName string) ([]survey.Economic, error) {
	qry := fmt.Sprintf("SELECT %s, %s, %s, %s, %s, %s, %s, %s FROM %s",
		fldCaseID, fldYear, fldFTPT, fldMultiJob, fldStudent, fldLabor, fldEarnWk, fldHours, tableName)

	rows, e := db.Query(qry)
	if e != nil {
		return nil, e
	}
	defer func() { _ = rows.Close() }()

	var out []survey.Economic
	for rows.Next() {
		var (
			id                                          uint64
			year, ftpt, mjot, schenr, telfs, ernwa, hrs int64
		)
		if e = rows.Scan(&id, &year, &ftpt, &mjot, &schenr, &telfs, &ernwa, &hrs); e != nil {
			return nil, e
		}

		out = append(out, buildEconomic(id, int(year), int(ftpt), int(mjot), int(schenr),
			int(telfs), int(ernwa), int(hrs)))
	}

	return out, rows.Err()
}

// DemographicsDB loads the household file from tableName, keeping the
// respondent's own row.
func DemographicsDB(db *sql.DB, tableName string) ([]survey.Demographic, error) {
	qry := fmt.Sprintf("SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s FROM %s WHERE %s = 1",
		fldCaseID, fldState, fldSex, fldAge, fldEduc, fldRace, fldHisp, fldNatvty, fldCitshp,
		fldMarital, fldHHnum, tableName, fldLineNo)

	rows, e := db.Query(qry)
	if e != nil {
		return nil, e
	}
	defer func() { _ = rows.Close() }()

	var out []survey.Demographic
	for rows.Next() {
		var (
			id                                                            uint64
			st, sex, age, educa, race, hisp, natvty, citshp, marital, hhn int64
		)
		if e = rows.Scan(&id, &st, &sex, &age, &educa, &race, &hisp, &natvty, &citshp, &marital, &hhn); e != nil {
			return nil, e
		}

		out = append(out, buildDemographic(id, int(st), int(sex), int(age), int(educa), int(race),
			int(hisp), int(natvty), int(citshp), int(marital), int(hhn)))
	}

	return out, rows.Err()
}

// ActivitiesDB loads the diary file from tableName.
func ActivitiesDB(db *sql.DB, tableName string) ([]survey.Activity, error) {
	qry := fmt.Sprintf("SELECT %s, %s, %s FROM %s", fldCaseID, fldActCode, fldActDur, tableName)

	rows, e := db.Query(qry)
	if e != nil {
		return nil, e
	}
	defer func() { _ = rows.Close() }()

	var out []survey.Activity
	for rows.Next() {
		var (
			id        uint64
			code, dur int64
		)
		if e = rows.Scan(&id, &code, &dur); e != nil {
			return nil, e
		}

		out = append(out, buildActivity(id, int(code), int(dur)))
	}

	return out, rows.Err()
}
