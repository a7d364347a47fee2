// Package sqlinline holds every SQL statement the service runs. Each query
// carries a --sql <uuid> audit marker on its first line; the runner logs by
// marker and tools/sqllint enforces the convention.
package sqlinline

const QInsertCardJob = `--sql 19462a58-d293-4fdc-b640-ca01e54af1af
insert into card_jobs (id, status, params_json, error_message, created_at, updated_at)
values ($1::uuid, $2::text, $3::jsonb, $4::text, now(), now());
`

const QSelectCardJobByID = `--sql 2c16840d-3831-4f7c-a199-5592d0ff8d7d
select id, status, params_json, error_message, created_at, updated_at
from card_jobs
where id = $1::uuid
limit 1;
`

const QClaimCardJob = `--sql c729c35f-a065-4d60-b617-12acae0f2d5f
with next_job as (
    select id
    from card_jobs
    where status = 'queued'
    order by created_at asc
    for update skip locked
    limit 1
),
updated as (
    update card_jobs
    set status = 'running', updated_at = now()
    where id in (select id from next_job)
    returning id, status, params_json, error_message, created_at, updated_at
)
select id, status, params_json, error_message, created_at, updated_at from updated;
`

const QUpdateCardJobStatus = `--sql 2e549df9-1c90-4c09-b5ec-b7c0e640fa04
update card_jobs
set status = $2::text,
    error_message = coalesce($3::text, error_message),
    updated_at = now()
where id = $1::uuid;
`
