package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/imaging"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/storage"
	"github.com/BruksfildServices01/barbershop-booking/internal/logger"
)

type errorInfo struct {
	status  int
	message string
}

// businessErrors traduz os códigos de negócio para HTTP.
var businessErrors = map[string]errorInfo{
	// sessão e permissões
	"auth_required":        {http.StatusUnauthorized, "Faça login para concluir a reserva."},
	"invalid_credentials":  {http.StatusUnauthorized, "E-mail ou senha inválidos."},
	"console_denied":       {http.StatusForbidden, "Acesso restrito ao painel administrativo."},
	"users_denied":         {http.StatusForbidden, "Apenas administradores podem gerenciar usuários."},
	"shop_forbidden":       {http.StatusForbidden, "Você não pode editar esta barbearia."},
	"shop_quota_reached":   {http.StatusForbidden, "Limite de barbearias atingido."},
	"role_not_allowed":     {http.StatusForbidden, "Você não pode atribuir este papel."},
	"realtime_forbidden":   {http.StatusForbidden, "Assinatura não permitida."},
	"email_taken":          {http.StatusConflict, "Este e-mail já está cadastrado."},
	"invalid_email":        {http.StatusBadRequest, "E-mail inválido."},
	"invalid_email_domain": {http.StatusBadRequest, "O domínio do e-mail informado não parece ser válido."},
	"weak_password":        {http.StatusBadRequest, "A senha deve ter pelo menos 6 caracteres."},

	// não encontrados
	"appointment_not_found":  {http.StatusNotFound, "Agendamento não encontrado."},
	"barbershop_not_found":   {http.StatusNotFound, "Barbearia não encontrada."},
	"draft_not_found":        {http.StatusNotFound, "Reserva expirada ou inexistente."},
	"profile_not_found":      {http.StatusNotFound, "Perfil não encontrado."},
	"user_not_found":         {http.StatusNotFound, "Usuário não encontrado."},
	"service_not_found":      {http.StatusNotFound, "Serviço não encontrado."},
	"professional_not_found": {http.StatusNotFound, "Profissional não encontrado."},

	// reserva
	"step_blocked":       {http.StatusConflict, "Conclua a seleção antes de avançar."},
	"wrong_step":         {http.StatusConflict, "Ação indisponível nesta etapa."},
	"booking_incomplete": {http.StatusConflict, "Selecione data e horário."},
	"booking_finished":   {http.StatusConflict, "Esta reserva já foi encerrada."},
	"slot_taken":         {http.StatusConflict, "Este horário acabou de ser reservado."},
	"booking_failed":     {http.StatusInternalServerError, "Erro ao realizar agendamento. Tente novamente."},
	"date_in_past":       {http.StatusBadRequest, "Não é possível agendar no passado."},
	"date_out_of_view":   {http.StatusBadRequest, "Data fora do mês exibido."},
	"invalid_date":       {http.StatusBadRequest, "Data inválida."},
	"invalid_slot":       {http.StatusBadRequest, "Horário inválido."},

	// agendamentos
	"invalid_status":     {http.StatusBadRequest, "Status inválido."},
	"status_not_allowed": {http.StatusBadRequest, "Status não permitido."},
	"invalid_state":      {http.StatusConflict, "O agendamento não pode mais ser alterado."},
	"invalid_tab":        {http.StatusBadRequest, "Aba inválida."},

	// painel
	"cover_required":           {http.StatusBadRequest, "A imagem de capa é obrigatória."},
	"confirmation_required":    {http.StatusBadRequest, "Confirme a exclusão."},
	"name_required":            {http.StatusBadRequest, "O nome é obrigatório."},
	"invalid_service":          {http.StatusBadRequest, "Serviço inválido."},
	"invalid_duration":         {http.StatusBadRequest, "Duração inválida."},
	"invalid_coordinates":      {http.StatusBadRequest, "Coordenadas inválidas."},
	"invalid_max_shops":        {http.StatusBadRequest, "Cota de barbearias inválida."},
	"shop_without_coordinates": {http.StatusUnprocessableEntity, "Esta barbearia não tem localização."},

	// realtime
	"invalid_filter": {http.StatusBadRequest, "Filtro inválido."},
	"unknown_table":  {http.StatusBadRequest, "Tabela desconhecida."},
}

// respondError escreve a resposta de erro de um caso de uso.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	if code, ok := httperr.CodeOf(err); ok {
		if info, known := businessErrors[code]; known {
			if info.status >= http.StatusInternalServerError {
				log.Error().Err(err).Str("path", c.FullPath()).Msg(code)
			}
			httperr.Write(c, info.status, code, info.message)
			return
		}
	}

	switch {
	case errors.Is(err, storage.ErrUnavailable):
		httperr.Write(c, http.StatusServiceUnavailable, "storage_unavailable", "Armazenamento de imagens indisponível.")
	case errors.Is(err, imaging.ErrUnsupportedImage):
		httperr.BadRequest(c, "unsupported_image", "Formato de imagem não suportado.")
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("unexpected error")
		httperr.Internal(c, "internal_error", "Erro interno.")
	}
}

func invalidRequest(c *gin.Context) {
	httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
}
