package firestore

var ExtractCount = extractCount
