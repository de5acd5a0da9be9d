package sheets

import "github.com/d8o8m8-lab/production-bot-railway/pkg/domain/model/record"

func NewWithAPI(client api, spreadsheetID string, schemas record.Schemas) *Sheets {
	return newSheets(client, spreadsheetID, schemas)
}

var A1Range = a1Range
