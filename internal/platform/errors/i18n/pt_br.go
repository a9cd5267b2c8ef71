package i18n

func init() {
	RegisterCatalog("pt-BR", NewCatalog("pt-BR", ptBRMessages))
}

var ptBRMessages = map[Code]string{
	CodeMatchTeamNameEmpty:     "Os nomes dos times mandante e visitante não podem ser vazios.",
	CodeMatchNegativeScore:     "O placar não pode ser negativo.",
	CodeMatchScoreOutOfRange:   "O placar somado é grande demais.",
	CodeMatchAlreadyInProgress: "Já existe uma partida em andamento entre {{.HomeTeam}} e {{.AwayTeam}}.",
	CodeMatchNotFound:          "Nenhuma partida em andamento entre {{.HomeTeam}} e {{.AwayTeam}}.",
	CodeFilterInvalid:          "O filtro de partidas é inválido: {{.Reason}}",
}
