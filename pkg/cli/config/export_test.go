package config

import "github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"

func ParseTables(raw []byte) (record.Schemas, error) {
	return parseTables(raw, record.DefaultSchemas())
}
